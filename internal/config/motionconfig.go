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

// motionConfiguration holds the physical constants used to convert between
// playing-cell offsets and motor step counts, and the revolutions-per-second
// for each speed class.
type motionConfiguration struct {
	StepsPerRev int
	MmPerRev    float64
	MmPerCell   float64

	HomingRps   float64
	NMoveRps    float64
	OffsetRps   float64
	NoFigureRps float64
	TransportRps float64
}

// sets defaults which might be overwritten by the config file.
func init() {
	Settings.Motion.StepsPerRev = 200
	Settings.Motion.MmPerRev = 14.135
	Settings.Motion.MmPerCell = 45.0

	Settings.Motion.HomingRps = 5.0
	Settings.Motion.NMoveRps = 2.0
	Settings.Motion.OffsetRps = 1.5
	Settings.Motion.NoFigureRps = 4.5
	Settings.Motion.TransportRps = 2.0
}

// applies defaults for configurations not set by the config file.
func setupMotion() {
	if Settings.Motion.StepsPerRev == 0 {
		Settings.Motion.StepsPerRev = 200
	}
	if Settings.Motion.MmPerRev == 0 {
		Settings.Motion.MmPerRev = 14.135
	}
	if Settings.Motion.MmPerCell == 0 {
		Settings.Motion.MmPerCell = 45.0
	}
}
