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

package presenters

import (
	"time"

	"github.com/litlens/litlens/pkg/server/database"
)

// Discussion is a result of PresentDiscussion
type Discussion struct {
	UUID       string            `json:"uuid"`
	CreatedAt  time.Time         `json:"created_at"`
	UserUUID   string            `json:"user_uuid"`
	UserName   string            `json:"user_name"`
	UserAvatar string            `json:"user_avatar"`
	Title      string            `json:"title"`
	Content    string            `json:"content"`
	Category   string            `json:"category"`
	BookUUID   string            `json:"book_uuid,omitempty"`
	ReplyCount int               `json:"reply_count"`
	Replies    []DiscussionReply `json:"replies,omitempty"`
}

// DiscussionReply is a result of PresentDiscussionReply
type DiscussionReply struct {
	UUID       string    `json:"uuid"`
	CreatedAt  time.Time `json:"created_at"`
	UserUUID   string    `json:"user_uuid"`
	UserName   string    `json:"user_name"`
	UserAvatar string    `json:"user_avatar"`
	Content    string    `json:"content"`
}

// PresentDiscussion presents a discussion without its replies
func PresentDiscussion(d database.Discussion) Discussion {
	return Discussion{
		UUID:       d.UUID,
		CreatedAt:  FormatTS(d.CreatedAt),
		UserUUID:   d.User.UUID,
		UserName:   d.User.Name,
		UserAvatar: d.User.Avatar,
		Title:      d.Title,
		Content:    d.Content,
		Category:   d.Category,
		BookUUID:   d.BookUUID,
		ReplyCount: d.ReplyCount,
	}
}

// PresentDiscussionDetail presents a discussion with its replies
func PresentDiscussionDetail(d database.Discussion) Discussion {
	ret := PresentDiscussion(d)
	ret.Replies = PresentDiscussionReplies(d.Replies)

	return ret
}

// PresentDiscussions presents discussions
func PresentDiscussions(discussions []database.Discussion) []Discussion {
	ret := []Discussion{}

	for _, d := range discussions {
		p := PresentDiscussion(d)
		ret = append(ret, p)
	}

	return ret
}

// PresentDiscussionReply presents a discussion reply
func PresentDiscussionReply(r database.DiscussionReply) DiscussionReply {
	return DiscussionReply{
		UUID:       r.UUID,
		CreatedAt:  FormatTS(r.CreatedAt),
		UserUUID:   r.User.UUID,
		UserName:   r.User.Name,
		UserAvatar: r.User.Avatar,
		Content:    r.Content,
	}
}

// PresentDiscussionReplies presents discussion replies
func PresentDiscussionReplies(replies []database.DiscussionReply) []DiscussionReply {
	ret := []DiscussionReply{}

	for _, r := range replies {
		p := PresentDiscussionReply(r)
		ret = append(ret, p)
	}

	return ret
}
