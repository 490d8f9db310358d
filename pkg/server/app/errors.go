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

import "github.com/pkg/errors"

var (
	// ErrNotFound is an error for nonexistent records
	ErrNotFound = errors.New("not found")
	// ErrLoginInvalid is an error for invalid credentials
	ErrLoginInvalid = errors.New("Wrong email and password combination")
	// ErrEmailRequired is an error for missing email
	ErrEmailRequired = errors.New("Email is required")
	// ErrPasswordRequired is an error for missing password
	ErrPasswordRequired = errors.New("Password is required")
	// ErrLoginRequired is an error for requests that require an authenticated user
	ErrLoginRequired = errors.New("Login required")
	// ErrUsernameRequired is an error for missing username
	ErrUsernameRequired = errors.New("Username is required")
	// ErrPasswordTooShort is an error for a password that is too short
	ErrPasswordTooShort = errors.New("Password should be longer than 8 characters")
	// ErrPasswordConfirmationMismatch is an error for mismatched password confirmation
	ErrPasswordConfirmationMismatch = errors.New("Password reset password confirmation mismatch")
	// ErrDuplicateEmail is an error for duplicate email
	ErrDuplicateEmail = errors.New("Duplicate email")
	// ErrDuplicateUsername is an error for duplicate username
	ErrDuplicateUsername = errors.New("Duplicate username")
	// ErrRegistrationDisabled is an error for registration attempts while registration is closed
	ErrRegistrationDisabled = errors.New("Registration is disabled")
	// ErrInvalidSMTPConfig is an error for invalid SMTP configuration
	ErrInvalidSMTPConfig = errors.New("SMTP is not configured")
	// ErrInvalidToken is an error for an invalid token
	ErrInvalidToken = errors.New("Invalid token")
	// ErrPasswordResetTokenExpired is an error for an expired password reset token
	ErrPasswordResetTokenExpired = errors.New("This password reset link has expired")
	// ErrDuplicateReview is an error for a second review on the same book by the same user
	ErrDuplicateReview = errors.New("You have already reviewed this book")
	// ErrInvalidRating is an error for a rating outside the 1-5 range
	ErrInvalidRating = errors.New("Rating must be between 1 and 5")
	// ErrInvalidReportReason is an error for an unknown report reason
	ErrInvalidReportReason = errors.New("Unknown report reason")
	// ErrInvalidReportStatus is an error for an unknown report status
	ErrInvalidReportStatus = errors.New("Unknown report status")
	// ErrInvalidBookStatus is an error for an unknown reading status
	ErrInvalidBookStatus = errors.New("Unknown reading status")
)
