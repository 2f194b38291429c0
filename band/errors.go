// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package band

import "errors"

var (
	// ErrDimensionMismatch is returned when images that must share a width
	// and height do not. The wrapping error names every operand.
	ErrDimensionMismatch = errors.New("image sizes differ")

	// ErrTypeMismatch is returned when an operand does not have the channel
	// representation an operation requires.
	ErrTypeMismatch = errors.New("unexpected image type")

	// ErrInvalidDimensions is returned when a width, height or sample count
	// cannot describe an image.
	ErrInvalidDimensions = errors.New("invalid image dimensions")
)
