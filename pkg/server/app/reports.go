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
	"github.com/litlens/litlens/pkg/server/database"
	"github.com/litlens/litlens/pkg/server/helpers"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func isValidReportReason(reason string) bool {
	for _, r := range database.ReportReasons {
		if r == reason {
			return true
		}
	}

	return false
}

func isValidReportStatus(status string) bool {
	for _, s := range database.ReportStatuses {
		if s == status {
			return true
		}
	}

	return false
}

// CreateReportParams is the parameters for creating a report
type CreateReportParams struct {
	TargetUUID  string
	TargetType  string
	Reason      string
	Description string
}

// CreateReport files a moderation report. When the target is a review,
// the review's report counter is updated in the same transaction.
func (a *App) CreateReport(user database.User, p CreateReportParams) (database.Report, error) {
	if !isValidReportReason(p.Reason) {
		return database.Report{}, ErrInvalidReportReason
	}

	uuid, err := helpers.GenUUID()
	if err != nil {
		return database.Report{}, errors.Wrap(err, "generating uuid")
	}

	report := database.Report{
		UUID:        uuid,
		TargetUUID:  p.TargetUUID,
		TargetType:  p.TargetType,
		ReporterID:  user.ID,
		Reason:      p.Reason,
		Description: p.Description,
		Status:      database.ReportStatusPending,
	}

	tx := a.DB.Begin()

	if err := tx.Create(&report).Error; err != nil {
		tx.Rollback()
		return database.Report{}, errors.Wrap(err, "inserting report")
	}

	if p.TargetType == database.ReportTargetReview {
		err := tx.Model(&database.Review{}).
			Where("uuid = ?", p.TargetUUID).
			Update("report_count", gorm.Expr("report_count + 1")).Error
		if err != nil {
			tx.Rollback()
			return database.Report{}, errors.Wrap(err, "incrementing report count")
		}
	}

	tx.Commit()

	return report, nil
}

// ListReports returns reports, newest first, optionally filtered by status
func (a *App) ListReports(status string) ([]database.Report, error) {
	conn := a.DB.Order("created_at DESC")
	if status != "" {
		if !isValidReportStatus(status) {
			return nil, ErrInvalidReportStatus
		}
		conn = conn.Where("status = ?", status)
	}

	var reports []database.Report
	if err := conn.Find(&reports).Error; err != nil {
		return nil, errors.Wrap(err, "fetching reports")
	}

	return reports, nil
}

// UpdateReportStatus transitions a report to the given status
func (a *App) UpdateReportStatus(reportUUID, status string) (database.Report, error) {
	if !isValidReportStatus(status) {
		return database.Report{}, ErrInvalidReportStatus
	}

	var report database.Report
	err := a.DB.Where("uuid = ?", reportUUID).First(&report).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return database.Report{}, ErrNotFound
	} else if err != nil {
		return database.Report{}, errors.Wrap(err, "finding report")
	}

	if err := a.DB.Model(&report).Update("status", status).Error; err != nil {
		return database.Report{}, errors.Wrap(err, "updating status")
	}

	report.Status = status

	return report, nil
}
