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

package cmd

import (
	"fmt"

	"github.com/fatih/color"
)

var (
	colorGreen = color.New(color.FgGreen)
	colorBlue  = color.New(color.FgBlue)
	colorRed   = color.New(color.FgRed)
)

var indent = "  "

// printInfof prints an informational message to the terminal
func printInfof(msg string, v ...interface{}) {
	fmt.Fprintf(color.Output, "%s%s %s", indent, colorBlue.Sprint("•"), fmt.Sprintf(msg, v...))
}

// printSuccessf prints a success message to the terminal
func printSuccessf(msg string, v ...interface{}) {
	fmt.Fprintf(color.Output, "%s%s %s", indent, colorGreen.Sprint("✔"), fmt.Sprintf(msg, v...))
}

// printErrorf prints an error message to the terminal
func printErrorf(msg string, v ...interface{}) {
	fmt.Fprintf(color.Output, "%s%s %s", indent, colorRed.Sprint("⨯"), fmt.Sprintf(msg, v...))
}
