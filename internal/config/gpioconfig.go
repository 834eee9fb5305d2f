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

package config

// gpioConfiguration holds the pin assignment for the stepper driver board.
// The driver itself is an external collaborator (spec.md §1); only the pin
// numbers are the core's concern, passed to whatever driver.Driver
// implementation is wired at startup.
type gpioConfiguration struct {
	StepPinX      int
	DirPinX       int
	StepPinY      int
	DirPinY       int
	EnablePin     int
	MagnetPin     int
}

// sets defaults which might be overwritten by the config file.
func init() {
	Settings.Gpio.StepPinX = 17
	Settings.Gpio.DirPinX = 27
	Settings.Gpio.StepPinY = 22
	Settings.Gpio.DirPinY = 23
	Settings.Gpio.EnablePin = 24
	Settings.Gpio.MagnetPin = 25
}

func setupGpio() {}
