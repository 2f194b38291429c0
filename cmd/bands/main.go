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

// Command bands applies band algebra to image files.
//
// Usage:
//
//	bands merge red.png green.png blue.png -o rgb.png
//	bands split rgb.png -o planes           # planes_r.png, planes_g.png, planes_b.png
//	bands add a.png b.png -o sum.png        # clamp(a + b) on signed samples
//	bands sub a.png b.png -o diff.tiff
//	bands info
//
// Grayscale inputs are read as luma and shifted into the signed sample range
// [-128, 127]; outputs are shifted back.
package main

import (
	"fmt"
	"os"
)

// version is overridden at link time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
