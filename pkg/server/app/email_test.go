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

package app

import (
	"testing"

	"github.com/litlens/litlens/pkg/assert"
	"github.com/litlens/litlens/pkg/server/testutils"
)

func TestGetSenderEmail(t *testing.T) {
	testCases := []struct {
		baseURL  string
		expected string
	}{
		{
			baseURL:  "https://www.litlens.example.com",
			expected: "noreply@example.com",
		},
		{
			baseURL:  "http://localhost:3000",
			expected: "noreply@localhost",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.baseURL, func(t *testing.T) {
			got, err := GetSenderEmail(tc.baseURL)
			if err != nil {
				t.Fatal(err)
			}

			assert.Equal(t, got, tc.expected, "sender mismatch")
		})
	}
}

func TestSendPasswordResetEmail(t *testing.T) {
	a := NewTest()
	a.DB = testutils.InitMemoryDB(t)

	backend := a.EmailBackend.(*testutils.MockEmailbackendImplementation)

	if err := a.SendPasswordResetEmail("alice@example.com", "testToken"); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, len(backend.Emails), 1, "email count mismatch")
	assert.DeepEqual(t, backend.Emails[0].To, []string{"alice@example.com"}, "recipient mismatch")

	t.Run("missing email", func(t *testing.T) {
		err := a.SendPasswordResetEmail("", "testToken")
		assert.Equal(t, err, ErrEmailRequired, "error mismatch")
	})
}

func TestSendWelcomeEmail(t *testing.T) {
	a := NewTest()
	a.DB = testutils.InitMemoryDB(t)

	backend := a.EmailBackend.(*testutils.MockEmailbackendImplementation)

	if err := a.SendWelcomeEmail("alice@example.com"); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, len(backend.Emails), 1, "email count mismatch")
}
