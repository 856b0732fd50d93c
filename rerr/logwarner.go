// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rerr

import "log"

// LogWarner logs physical-warnings to the standard library logger, the same
// way gofem/inp/logging.go's LogErr reports recoverable problems.
type LogWarner struct{}

// Warn prints e via log.Printf.
func (LogWarner) Warn(e *Error) {
	log.Printf("%s\n", e.Error())
}
