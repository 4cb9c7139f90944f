// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Photonbench

// Package uc2000 drives a SYNRAD UC-2000 laser power controller in REMOTE
// mode. Controller holds the host-side view of the device settings,
// validates and clamps assignments, suppresses no-op writes, and forwards
// encoded frames to an attached Transport. Frame encoding itself lives in
// the remote package.
package uc2000

import (
	"math"

	"github.com/photonbench/uc2000/pkg/remote"
)

// PercentStep is the minimum step size of the PWM duty cycle percent.
const PercentStep = 0.5

// MinLasePercent is the duty cycle at which the beam is considered OFF to
// material while the command signal stays on. Used as the floor between
// timed shots.
const MinLasePercent = 2

// Shot time limits in milliseconds.
const (
	MinShotTimeMs = 50
	MaxShotTimeMs = 10000
)

// percentRemap substitutes setpoints that the device cannot encode in
// checksum-compatible form with the nearest encodable neighbour.
var percentRemap = map[float64]float64{63: 62.5}

// Factory defaults assigned by Reset.
const (
	DefaultPWMFreq       = 20 // higher PWM frequency means lower ripple in the optical response
	DefaultMaxPWM        = 95
	DefaultLaseOnPowerUp = false
	DefaultLase          = false
	DefaultPercent       = 0
)

// Factory defaults assigned by Reset (enum-typed).
var (
	DefaultGateLogic = remote.GateUp
	DefaultMode      = remote.ModeManual
)

// Controller is the host-side state of one UC-2000. A Controller is owned
// by a single goroutine; it performs no locking of its own. Settings flow
// through the same path: clamp/validate, record into the two-slot history,
// and transmit only when the value actually changed.
type Controller struct {
	model     int
	transport Transport
	scheduler Scheduler

	pwmFreq       Setting[int]
	gateLogic     Setting[remote.GateLogic]
	maxPWM        Setting[int]
	laseOnPowerUp Setting[bool]
	mode          Setting[remote.Mode]
	lase          Setting[bool]
	percent       Setting[float64]
	checksum      Setting[bool]
}

// Option configures a Controller during New.
type Option func(*Controller)

// WithTransport attaches the transport that receives encoded frames.
func WithTransport(t Transport) Option {
	return func(c *Controller) { c.transport = t }
}

// WithScheduler attaches the interval scheduler used by Shoot.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) { c.scheduler = s }
}

// WithChecksum overrides the initial checksum mode. Checksum frames are the
// default; the flag only changes how this encoder builds frames, the
// device's own checksum mode is set on its front panel.
func WithChecksum(enabled bool) Option {
	return func(c *Controller) { c.checksum.record(enabled) }
}

// New creates a controller for the given laser model power rating in watts
// (25 or 50 for the 48 series) and resets every setting to its default. If
// a transport is attached the reset frames go out on the wire; a transport
// error aborts construction.
func New(model int, opts ...Option) (*Controller, error) {
	c := &Controller{model: model}
	c.checksum.record(true)
	for _, opt := range opts {
		opt(c)
	}
	if err := c.Reset(); err != nil {
		return nil, err
	}
	return c, nil
}

// AttachTransport attaches (or replaces) the frame transport. Useful when
// the controller state is built first and the link opened later.
func (c *Controller) AttachTransport(t Transport) {
	c.transport = t
}

// AttachScheduler attaches (or replaces) the shot interval scheduler.
func (c *Controller) AttachScheduler(s Scheduler) {
	c.scheduler = s
}

// Model returns the laser model power rating in watts.
func (c *Controller) Model() int { return c.model }

// Setting accessors. Each returns the two-slot holder by value; use
// Value() for the current setting and Previous() for the one before it.

// PWMFreq returns the PWM frequency setting in kHz.
func (c *Controller) PWMFreq() Setting[int] { return c.pwmFreq }

// GateLogic returns the gate pull-up/pull-down setting.
func (c *Controller) GateLogic() Setting[remote.GateLogic] { return c.gateLogic }

// MaxPWM returns the maximum duty cycle setting in percent.
func (c *Controller) MaxPWM() Setting[int] { return c.maxPWM }

// LaseOnPowerUp returns the lase-on-power-up setting.
func (c *Controller) LaseOnPowerUp() Setting[bool] { return c.laseOnPowerUp }

// Mode returns the operating mode setting.
func (c *Controller) Mode() Setting[remote.Mode] { return c.mode }

// Lase returns the lase (command signal) setting.
func (c *Controller) Lase() Setting[bool] { return c.lase }

// Percent returns the PWM duty cycle percent setting.
func (c *Controller) Percent() Setting[float64] { return c.percent }

// Checksum returns the checksum-mode flag setting.
func (c *Controller) Checksum() Setting[bool] { return c.checksum }

// SetPWMFreq sets the PWM frequency in kHz. Legal values are 5, 10, and
// 20; out-of-domain values are stored as-is and rejected at encode time
// with remote.ErrInvalidValue.
func (c *Controller) SetPWMFreq(freq int) error {
	if c.pwmFreq.record(freq) {
		return c.send(remote.CmdPWMFreq, freq)
	}
	return nil
}

// SetGateLogic sets the gate input to pull-up or pull-down.
func (c *Controller) SetGateLogic(pull remote.GateLogic) error {
	if c.gateLogic.record(pull) {
		return c.send(remote.CmdGateLogic, pull)
	}
	return nil
}

// SetMaxPWM sets the maximum duty cycle percent. Legal values are 95 and
// 99; 95 is the factory default because running above it increases heat
// load on the laser.
func (c *Controller) SetMaxPWM(per int) error {
	if c.maxPWM.record(per) {
		return c.send(remote.CmdMaxPWM, per)
	}
	return nil
}

// SetLaseOnPowerUp sets whether the controller lases immediately when
// powered on.
func (c *Controller) SetLaseOnPowerUp(on bool) error {
	if c.laseOnPowerUp.record(on) {
		return c.send(remote.CmdLaseOnPowerUp, on)
	}
	return nil
}

// SetMode sets the operating mode.
func (c *Controller) SetMode(mode remote.Mode) error {
	if c.mode.record(mode) {
		return c.send(remote.CmdMode, mode)
	}
	return nil
}

// SetLase turns the command signal on or off. With the signal off the
// controller still supplies the 5kHz tickle pulse that holds the laser gas
// just below lasing threshold.
func (c *Controller) SetLase(on bool) error {
	if c.lase.record(on) {
		return c.send(remote.CmdLase, on)
	}
	return nil
}

// SetPercent sets the PWM duty cycle percent. The value is clamped, not
// rejected: above the current max PWM it silently reverts to the previous
// percent, below zero it clamps to zero, and otherwise it rounds to the
// nearest multiple of PercentStep. 63 is substituted with 62.5 because 63%
// is not encodable in checksum-compatible form.
func (c *Controller) SetPercent(per float64) error {
	per = c.limitPercent(per)
	if c.percent.record(per) {
		return c.send(remote.CmdPercent, per)
	}
	return nil
}

// SetChecksum enables or disables the trailing checksum byte on outgoing
// frames. Recorded like any setting but never transmitted.
func (c *Controller) SetChecksum(enabled bool) {
	c.checksum.record(enabled)
}

// MaxPower returns the estimated maximum optical output power in watts for
// the current max PWM setting.
func (c *Controller) MaxPower() float64 {
	return float64(c.model) * float64(c.maxPWM.Value()) / 100
}

// Power returns the estimated current optical output power in watts.
func (c *Controller) Power() float64 {
	return float64(c.model) * c.percent.Value() / 100
}

// Reset assigns every setting to its factory default. The order is fixed:
// max PWM must be assigned before percent because the percent clamp reads
// the current max PWM.
func (c *Controller) Reset() error {
	if err := c.SetPWMFreq(DefaultPWMFreq); err != nil {
		return err
	}
	if err := c.SetGateLogic(DefaultGateLogic); err != nil {
		return err
	}
	if err := c.SetMaxPWM(DefaultMaxPWM); err != nil {
		return err
	}
	if err := c.SetLaseOnPowerUp(DefaultLaseOnPowerUp); err != nil {
		return err
	}
	if err := c.SetMode(DefaultMode); err != nil {
		return err
	}
	if err := c.SetLase(DefaultLase); err != nil {
		return err
	}
	return c.SetPercent(DefaultPercent)
}

// Shoot fires numShots timed laser shots of shotTimeMs each at shotPercent
// duty cycle, using a LOW, HIGH, LOW percent sequence with the command
// signal held on. The time between shots equals the shot time. Shot time
// is clamped into [MinShotTimeMs, MaxShotTimeMs]; values above the maximum
// also clamp to the minimum. Requires an attached scheduler to time the
// intervals; without one the percent/lase bracketing still runs and
// zero-value metrics are returned.
func (c *Controller) Shoot(shotPercent, shotTimeMs float64, numShots int) (Metrics, error) {
	shotTimeMs = limitShotTime(shotTimeMs)

	if err := c.SetPercent(MinLasePercent); err != nil {
		return Metrics{}, err
	}
	if err := c.SetLase(true); err != nil {
		return Metrics{}, err
	}

	var metrics Metrics
	if c.scheduler != nil {
		// 2n-1 iterations: the boundary callback ends the final shot, so an
		// odd count yields exactly n HIGH windows.
		c.scheduler.Configure(int64(shotTimeMs*1000), 2*numShots-1)
		var err error
		metrics, err = c.scheduler.Run(
			func(i int) error {
				if i%2 == 0 {
					return c.SetPercent(shotPercent)
				}
				return c.SetPercent(MinLasePercent)
			},
			func() error {
				return c.SetPercent(MinLasePercent)
			},
		)
		if err != nil {
			return metrics, err
		}
	}

	if err := c.SetPercent(MinLasePercent); err != nil {
		return metrics, err
	}
	if err := c.SetLase(false); err != nil {
		return metrics, err
	}
	return metrics, nil
}

// send encodes a command with the current checksum mode and hands it to
// the transport. Without a transport the controller only tracks state.
// Transport errors pass through untranslated.
func (c *Controller) send(cmd remote.Command, value any) error {
	if c.transport == nil {
		return nil
	}
	frame, err := remote.Encode(cmd, value, c.checksum.Value())
	if err != nil {
		return err
	}
	return c.transport.Transmit(frame)
}

// limitPercent applies the percent assignment policy: silent revert above
// the current max PWM, clamp at zero, rounding to the half-percent grid,
// then the encodability remap.
func (c *Controller) limitPercent(per float64) float64 {
	var setpoint float64
	switch {
	case per > float64(c.maxPWM.Value()):
		setpoint = c.percent.Value()
	case per < 0:
		setpoint = 0
	default:
		setpoint = PercentStep * math.Round(per/PercentStep)
	}
	if mapped, ok := percentRemap[setpoint]; ok {
		setpoint = mapped
	}
	return setpoint
}

// limitShotTime clamps a shot time into the legal range. Both under- and
// over-range values clamp to the minimum.
func limitShotTime(ms float64) float64 {
	if ms < MinShotTimeMs || ms > MaxShotTimeMs {
		return MinShotTimeMs
	}
	return ms
}
