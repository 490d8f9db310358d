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

// Report is a result of PresentReport
type Report struct {
	UUID        string    `json:"uuid"`
	CreatedAt   time.Time `json:"created_at"`
	TargetUUID  string    `json:"target_uuid"`
	TargetType  string    `json:"target_type"`
	Reason      string    `json:"reason"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
}

// PresentReport presents a report
func PresentReport(report database.Report) Report {
	return Report{
		UUID:        report.UUID,
		CreatedAt:   FormatTS(report.CreatedAt),
		TargetUUID:  report.TargetUUID,
		TargetType:  report.TargetType,
		Reason:      report.Reason,
		Description: report.Description,
		Status:      report.Status,
	}
}

// PresentReports presents reports
func PresentReports(reports []database.Report) []Report {
	ret := []Report{}

	for _, report := range reports {
		p := PresentReport(report)
		ret = append(ret, p)
	}

	return ret
}
