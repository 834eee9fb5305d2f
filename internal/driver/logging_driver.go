/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package driver

import (
	"github.com/op/go-logging"

	"github.com/frankkopp/chessbot/internal/config"
	myLogging "github.com/frankkopp/chessbot/internal/logging"
	"github.com/frankkopp/chessbot/internal/motor"
)

// LoggingDriver satisfies Driver by logging every call to the motor
// logger instead of pulsing real GPIO pins. It is what the core is wired
// against until real hardware is attached; every method reports the pin
// numbers it would have driven, read from config.Settings.Gpio.
type LoggingDriver struct {
	stepPinX, dirPinX int
	stepPinY, dirPinY int
	enablePin         int
	magnetPin         int
	log               *logging.Logger
}

// NewLoggingDriver builds a LoggingDriver from the GPIO pin assignment in
// the global configuration (spec.md §1's GPIO collaborator interface).
func NewLoggingDriver() *LoggingDriver {
	gpio := config.Settings.Gpio
	return &LoggingDriver{
		stepPinX:  gpio.StepPinX,
		dirPinX:   gpio.DirPinX,
		stepPinY:  gpio.StepPinY,
		dirPinY:   gpio.DirPinY,
		enablePin: gpio.EnablePin,
		magnetPin: gpio.MagnetPin,
		log:       myLogging.GetMotorLog(),
	}
}

func (d *LoggingDriver) MoveSteps(axis Axis, steps uint32, dir bool, speed motor.Speed) error {
	stepPin, dirPin := d.stepPinX, d.dirPinX
	if axis == AxisY {
		stepPin, dirPin = d.stepPinY, d.dirPinY
	}
	d.log.Infof("move_steps axis=%s steps=%d dir=%v speed=%s step_pin=%d dir_pin=%d",
		axis, steps, dir, speed, stepPin, dirPin)
	return nil
}

func (d *LoggingDriver) Diagonal(steps uint32, xdir, ydir bool, speed motor.Speed) error {
	d.log.Infof("diagonal steps=%d xdir=%v ydir=%v speed=%s step_pins=(%d,%d) dir_pins=(%d,%d)",
		steps, xdir, ydir, speed, d.stepPinX, d.stepPinY, d.dirPinX, d.dirPinY)
	return nil
}

func (d *LoggingDriver) Magnet(on bool) error {
	d.log.Infof("magnet on=%v pin=%d", on, d.magnetPin)
	return nil
}

func (d *LoggingDriver) Enable() error {
	d.log.Infof("enable pin=%d", d.enablePin)
	return nil
}

func (d *LoggingDriver) Disable() error {
	d.log.Infof("disable pin=%d", d.enablePin)
	return nil
}
