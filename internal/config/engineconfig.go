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

// engineConfiguration holds the settings for talking to the external chess
// engine subprocess (spec.md §6).
type engineConfiguration struct {
	BinaryPath    string
	Elo           int
	ThinkTimeMs   int
	ReadyTimeoutMs int
}

// sets defaults which might be overwritten by the config file.
func init() {
	Settings.Engine.BinaryPath = "/usr/games/stockfish"
	Settings.Engine.Elo = 1500
	Settings.Engine.ThinkTimeMs = 1000
	Settings.Engine.ReadyTimeoutMs = 2000
}

// applies defaults for configurations not set by the config file.
func setupEngine() {
	if Settings.Engine.BinaryPath == "" {
		Settings.Engine.BinaryPath = "/usr/games/stockfish"
	}
	if Settings.Engine.ThinkTimeMs <= 0 {
		Settings.Engine.ThinkTimeMs = 1000
	}
}
