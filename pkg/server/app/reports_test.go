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
	"github.com/litlens/litlens/pkg/server/catalog"
	"github.com/litlens/litlens/pkg/server/database"
	"github.com/litlens/litlens/pkg/server/testutils"
	"github.com/pkg/errors"
)

func TestCreateReport(t *testing.T) {
	t.Run("report against a review bumps its counter", func(t *testing.T) {
		a := NewTest()
		a.DB = testutils.InitMemoryDB(t)

		author := testutils.SetupUserData(a.DB, "alice@example.com", "pass1234")
		reporter := testutils.SetupUserData(a.DB, "bob@example.com", "pass1234")
		book := testutils.SetupBookData(a.DB, "Dune", "Frank Herbert", []string{"Science Fiction"})

		review, err := a.CreateReview(author, catalog.ParseBookID(book.UUID), CreateReviewParams{Rating: 1, Content: "spammy"})
		if err != nil {
			t.Fatal(err)
		}

		report, err := a.CreateReport(reporter, CreateReportParams{
			TargetUUID: review.UUID,
			TargetType: database.ReportTargetReview,
			Reason:     "spam",
		})
		if err != nil {
			t.Fatal(err)
		}

		assert.Equal(t, report.Status, database.ReportStatusPending, "status mismatch")

		var persisted database.Review
		testutils.MustExec(t, a.DB.Where("uuid = ?", review.UUID).First(&persisted), "finding review")
		assert.Equal(t, persisted.ReportCount, 1, "report count mismatch")
	})

	t.Run("unknown reason is rejected", func(t *testing.T) {
		a := NewTest()
		a.DB = testutils.InitMemoryDB(t)

		reporter := testutils.SetupUserData(a.DB, "bob@example.com", "pass1234")

		_, err := a.CreateReport(reporter, CreateReportParams{
			TargetUUID: testutils.MustUUID(t),
			TargetType: database.ReportTargetReview,
			Reason:     "because",
		})
		assert.Equal(t, errors.Cause(err), ErrInvalidReportReason, "error mismatch")
	})
}

func TestUpdateReportStatus(t *testing.T) {
	a := NewTest()
	a.DB = testutils.InitMemoryDB(t)

	reporter := testutils.SetupUserData(a.DB, "bob@example.com", "pass1234")

	report, err := a.CreateReport(reporter, CreateReportParams{
		TargetUUID: testutils.MustUUID(t),
		TargetType: database.ReportTargetDiscussion,
		Reason:     "harassment",
	})
	if err != nil {
		t.Fatal(err)
	}

	t.Run("valid transition", func(t *testing.T) {
		got, err := a.UpdateReportStatus(report.UUID, database.ReportStatusActionTaken)
		if err != nil {
			t.Fatal(err)
		}

		assert.Equal(t, got.Status, database.ReportStatusActionTaken, "status mismatch")

		var persisted database.Report
		testutils.MustExec(t, a.DB.Where("uuid = ?", report.UUID).First(&persisted), "finding report")
		assert.Equal(t, persisted.Status, database.ReportStatusActionTaken, "persisted status mismatch")
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := a.UpdateReportStatus(report.UUID, "escalated")
		assert.Equal(t, errors.Cause(err), ErrInvalidReportStatus, "error mismatch")
	})

	t.Run("nonexistent report", func(t *testing.T) {
		_, err := a.UpdateReportStatus(testutils.MustUUID(t), database.ReportStatusDismissed)
		assert.Equal(t, errors.Cause(err), ErrNotFound, "error mismatch")
	})
}

func TestListReports(t *testing.T) {
	a := NewTest()
	a.DB = testutils.InitMemoryDB(t)

	reporter := testutils.SetupUserData(a.DB, "bob@example.com", "pass1234")

	r1, err := a.CreateReport(reporter, CreateReportParams{
		TargetUUID: testutils.MustUUID(t),
		TargetType: database.ReportTargetReply,
		Reason:     "spam",
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := a.CreateReport(reporter, CreateReportParams{
		TargetUUID: testutils.MustUUID(t),
		TargetType: database.ReportTargetReview,
		Reason:     "off_topic",
	}); err != nil {
		t.Fatal(err)
	}

	if _, err := a.UpdateReportStatus(r1.UUID, database.ReportStatusDismissed); err != nil {
		t.Fatal(err)
	}

	t.Run("all", func(t *testing.T) {
		got, err := a.ListReports("")
		if err != nil {
			t.Fatal(err)
		}

		assert.Equal(t, len(got), 2, "report count mismatch")
	})

	t.Run("by status", func(t *testing.T) {
		got, err := a.ListReports(database.ReportStatusPending)
		if err != nil {
			t.Fatal(err)
		}

		assert.Equal(t, len(got), 1, "report count mismatch")
	})

	t.Run("unknown status filter", func(t *testing.T) {
		_, err := a.ListReports("escalated")
		assert.Equal(t, errors.Cause(err), ErrInvalidReportStatus, "error mismatch")
	})
}
