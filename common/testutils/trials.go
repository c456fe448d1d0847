/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package testutils

import "time"

// TrialResult holds wall clock timings over repeated runs.
type TrialResult struct {
	Runs  int
	Total time.Duration
	Min   time.Duration
	Max   time.Duration
}

// Mean returns the average duration of a run, or zero if nothing ran.
func (r TrialResult) Mean() time.Duration {
	if r.Runs == 0 {
		return 0
	}
	return r.Total / time.Duration(r.Runs)
}

// MeasureTrials calls prepare and then run, runs times, timing only run.
func MeasureTrials[S any](runs int, prepare func() S, run func(S)) TrialResult {
	result := TrialResult{}
	for i := 0; i < runs; i++ {
		input := prepare()
		before := time.Now()
		run(input)
		elapsed := time.Since(before)

		if result.Runs == 0 || elapsed < result.Min {
			result.Min = elapsed
		}
		if elapsed > result.Max {
			result.Max = elapsed
		}
		result.Total += elapsed
		result.Runs++
	}
	return result
}
