// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Photonbench

package uc2000

// Session runs fn against the controller and guarantees the shutdown
// sequence (percent to 0, lase off) on every exit path: normal return,
// error, or panic. Use it to scope any stretch of work during which the
// beam may be live.
func (c *Controller) Session(fn func(*Controller) error) (err error) {
	defer func() {
		if sderr := c.Standby(); err == nil {
			err = sderr
		}
	}()
	return fn(c)
}

// Standby drops the duty cycle to zero and turns the command signal off.
func (c *Controller) Standby() error {
	if err := c.SetPercent(0); err != nil {
		return err
	}
	return c.SetLase(false)
}
