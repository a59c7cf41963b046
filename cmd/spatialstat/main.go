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

// Command spatialstat applies a windowed statistic filter to a grayscale
// image.
//
// Usage:
//
//	spatialstat -i input.png -o output.tiff [-r 1] [-s mean] [-w 0] [--depth 0|8|16] [-v]
//	spatialstat list
//
// Inputs are PNG or TIFF. 16-bit gray inputs (or --depth 16) are filtered as
// uint16 samples; everything else is converted to 8-bit gray first. The
// output format follows the output file extension.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func main() {
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stderr)

	if err := newRootCmd().Execute(); err != nil {
		log.WithError(err).Fatal("spatialstat failed")
	}
}
