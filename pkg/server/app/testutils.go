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
	"time"

	"github.com/litlens/litlens/pkg/clock"
	"github.com/litlens/litlens/pkg/server/testutils"
)

// NewTest returns an app for a testing environment
func NewTest() App {
	return App{
		Clock:               clock.NewMock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)),
		EmailBackend:        &testutils.MockEmailbackendImplementation{},
		BaseURL:             "http://127.0.0.1:3000",
		Port:                "3000",
		DisableRegistration: false,
	}
}
