/* Copyright 2025 LitLens Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package catalog provides the static demo catalog. It serves as demo
// data for standalone deployments, as seed data for the seed command,
// and as the curated fallback pool for recommendations.
package catalog

import (
	"github.com/litlens/litlens/pkg/server/database"
)

// Books returns a fresh copy of the demo catalog. Demo records carry
// small-integer string ids, never UUIDs.
func Books() []database.Book {
	books := make([]database.Book, len(demoBooks))
	copy(books, demoBooks)

	return books
}

// demoBooks is the static demo catalog, ordered by popularity. The
// fallback recommendation pool takes this order as its ranking.
var demoBooks = []database.Book{
	{
		UUID:          "1",
		Title:         "Dune",
		Author:        "Frank Herbert",
		CoverURL:      "https://covers.openlibrary.org/b/isbn/9780441172719-L.jpg",
		Description:   "Paul Atreides leads nomadic tribes in a battle for control of the desert planet Arrakis and its spice.",
		Genre:         database.StringList{"Science Fiction", "Adventure"},
		Rating:        4.6,
		TotalRatings:  1834,
		PublishedYear: 1965,
		Pages:         412,
		ISBN:          "9780441172719",
		Publisher:     "Chilton Books",
		Language:      "English",
	},
	{
		UUID:          "2",
		Title:         "1984",
		Author:        "George Orwell",
		CoverURL:      "https://covers.openlibrary.org/b/isbn/9780451524935-L.jpg",
		Description:   "Winston Smith rewrites history for the Ministry of Truth while dreaming of rebellion against Big Brother.",
		Genre:         database.StringList{"Dystopian Fiction", "Political Fiction"},
		Rating:        4.5,
		TotalRatings:  2411,
		PublishedYear: 1949,
		Pages:         328,
		ISBN:          "9780451524935",
		Publisher:     "Secker & Warburg",
		Language:      "English",
	},
	{
		UUID:          "3",
		Title:         "Pride and Prejudice",
		Author:        "Jane Austen",
		CoverURL:      "https://covers.openlibrary.org/b/isbn/9780141439518-L.jpg",
		Description:   "Elizabeth Bennet navigates manners, upbringing, and marriage in the company of the proud Mr. Darcy.",
		Genre:         database.StringList{"Romance", "Classic"},
		Rating:        4.4,
		TotalRatings:  1990,
		PublishedYear: 1813,
		Pages:         432,
		ISBN:          "9780141439518",
		Publisher:     "T. Egerton",
		Language:      "English",
	},
	{
		UUID:          "4",
		Title:         "The Hobbit",
		Author:        "J.R.R. Tolkien",
		CoverURL:      "https://covers.openlibrary.org/b/isbn/9780547928227-L.jpg",
		Description:   "Bilbo Baggins is swept into a quest to reclaim the dwarves' mountain home from the dragon Smaug.",
		Genre:         database.StringList{"Fantasy", "Adventure"},
		Rating:        4.7,
		TotalRatings:  2802,
		PublishedYear: 1937,
		Pages:         310,
		ISBN:          "9780547928227",
		Publisher:     "George Allen & Unwin",
		Language:      "English",
	},
	{
		UUID:          "5",
		Title:         "Gone Girl",
		Author:        "Gillian Flynn",
		CoverURL:      "https://covers.openlibrary.org/b/isbn/9780307588371-L.jpg",
		Description:   "Nick Dunne becomes the prime suspect when his wife Amy disappears on their fifth wedding anniversary.",
		Genre:         database.StringList{"Thriller", "Mystery"},
		Rating:        4.1,
		TotalRatings:  1577,
		PublishedYear: 2012,
		Pages:         419,
		ISBN:          "9780307588371",
		Publisher:     "Crown Publishing",
		Language:      "English",
	},
	{
		UUID:          "6",
		Title:         "The Martian",
		Author:        "Andy Weir",
		CoverURL:      "https://covers.openlibrary.org/b/isbn/9780553418026-L.jpg",
		Description:   "Stranded astronaut Mark Watney engineers his survival on Mars with potatoes, duct tape, and math.",
		Genre:         database.StringList{"Science Fiction"},
		Rating:        4.5,
		TotalRatings:  1688,
		PublishedYear: 2011,
		Pages:         369,
		ISBN:          "9780553418026",
		Publisher:     "Crown Publishing",
		Language:      "English",
	},
	{
		UUID:          "7",
		Title:         "The Girl with the Dragon Tattoo",
		Author:        "Stieg Larsson",
		CoverURL:      "https://covers.openlibrary.org/b/isbn/9780307454546-L.jpg",
		Description:   "Journalist Mikael Blomkvist and hacker Lisbeth Salander untangle a wealthy family's darkest secrets.",
		Genre:         database.StringList{"Mystery", "Crime"},
		Rating:        4.2,
		TotalRatings:  1453,
		PublishedYear: 2005,
		Pages:         465,
		ISBN:          "9780307454546",
		Publisher:     "Norstedts Förlag",
		Language:      "Swedish",
	},
	{
		UUID:          "8",
		Title:         "Becoming",
		Author:        "Michelle Obama",
		CoverURL:      "https://covers.openlibrary.org/b/isbn/9781524763138-L.jpg",
		Description:   "A memoir tracing the former First Lady's journey from the South Side of Chicago to the White House.",
		Genre:         database.StringList{"Biography", "Memoir"},
		Rating:        4.8,
		TotalRatings:  2134,
		PublishedYear: 2018,
		Pages:         448,
		ISBN:          "9781524763138",
		Publisher:     "Crown Publishing",
		Language:      "English",
	},
	{
		UUID:          "9",
		Title:         "The Fellowship of the Ring",
		Author:        "J.R.R. Tolkien",
		CoverURL:      "https://covers.openlibrary.org/b/isbn/9780547928210-L.jpg",
		Description:   "Frodo Baggins inherits the One Ring and sets out from the Shire to destroy it in the fires of Mount Doom.",
		Genre:         database.StringList{"Fantasy", "Epic"},
		Rating:        4.8,
		TotalRatings:  2650,
		PublishedYear: 1954,
		Pages:         423,
		ISBN:          "9780547928210",
		Publisher:     "George Allen & Unwin",
		Language:      "English",
	},
	{
		UUID:          "10",
		Title:         "Normal People",
		Author:        "Sally Rooney",
		CoverURL:      "https://covers.openlibrary.org/b/isbn/9781984822178-L.jpg",
		Description:   "Connell and Marianne weave in and out of each other's lives from school in Sligo through Trinity College.",
		Genre:         database.StringList{"Fiction", "Romance"},
		Rating:        3.9,
		TotalRatings:  1212,
		PublishedYear: 2018,
		Pages:         273,
		ISBN:          "9781984822178",
		Publisher:     "Faber & Faber",
		Language:      "English",
	},
	{
		UUID:          "11",
		Title:         "The Odyssey",
		Author:        "Homer",
		CoverURL:      "https://covers.openlibrary.org/b/isbn/9780140268867-L.jpg",
		Description:   "Odysseus spends ten years finding his way home from Troy against the wrath of Poseidon.",
		Genre:         database.StringList{"Epic", "Classic"},
		Rating:        4.3,
		TotalRatings:  980,
		PublishedYear: -700,
		Pages:         541,
		ISBN:          "9780140268867",
		Publisher:     "Penguin Classics",
		Language:      "Greek",
	},
	{
		UUID:          "12",
		Title:         "Project Hail Mary",
		Author:        "Andy Weir",
		CoverURL:      "https://covers.openlibrary.org/b/isbn/9780593135204-L.jpg",
		Description:   "Ryland Grace wakes alone on a spaceship with no memory and one job: save the Earth from extinction.",
		Genre:         database.StringList{"Science Fiction"},
		Rating:        4.7,
		TotalRatings:  1845,
		PublishedYear: 2021,
		Pages:         476,
		ISBN:          "9780593135204",
		Publisher:     "Ballantine Books",
		Language:      "English",
	},
}
