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

package mailer

import (
	"strings"
	"testing"

	"github.com/litlens/litlens/pkg/assert"
)

func TestExecuteResetPassword(t *testing.T) {
	T := NewTemplates()

	subject, body, err := T.Execute(EmailTypeResetPassword, EmailKindText, EmailResetPasswordTmplData{
		AccountEmail: "alice@example.com",
		Token:        "testToken",
		BaseURL:      "http://localhost:3000",
	})
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, subject, "Reset your LitLens password", "subject mismatch")
	assert.True(t, strings.Contains(body, "http://localhost:3000/password-reset/testToken"), "body is missing the reset link")
	assert.True(t, strings.Contains(body, "alice@example.com"), "body is missing the account email")
}

func TestExecuteResetPasswordHTML(t *testing.T) {
	T := NewTemplates()

	subject, body, err := T.Execute(EmailTypeResetPassword, EmailKindHTML, EmailResetPasswordTmplData{
		AccountEmail: "alice@example.com",
		Token:        "testToken",
		BaseURL:      "http://localhost:3000",
	})
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, subject, "Reset your LitLens password", "subject mismatch")
	assert.True(t, strings.Contains(body, "http://localhost:3000/password-reset/testToken"), "body is missing the reset link")
	// styles must be inlined for email clients
	assert.True(t, strings.Contains(body, "style="), "body is missing inlined styles")
}

func TestExecuteWelcome(t *testing.T) {
	T := NewTemplates()

	subject, body, err := T.Execute(EmailTypeWelcome, EmailKindText, WelcomeTmplData{
		AccountEmail: "alice@example.com",
		BaseURL:      "http://localhost:3000",
	})
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, subject, "Welcome to LitLens!", "subject mismatch")
	assert.True(t, strings.Contains(body, "alice@example.com"), "body is missing the account email")
}

func TestExecuteUnsupportedTemplate(t *testing.T) {
	T := NewTemplates()

	_, _, err := T.Execute("no_such_template", EmailKindText, nil)
	assert.NotEqual(t, err, nil, "expected an error for an unsupported template")
}
