// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package isen

import "github.com/cpmech/regencool/rerr"

func errPositiveName(name string, v float64, reason string) error {
	return rerr.Configf("isen.PerfectGas", "%s=%g %s", name, v, reason)
}
