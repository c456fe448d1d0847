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

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMeasureTrials(t *testing.T) {
	prepared := 0
	ran := 0
	result := MeasureTrials(5,
		func() int {
			prepared++
			return prepared
		},
		func(input int) {
			assert.Equal(t, prepared, input)
			ran++
		},
	)

	assert.Equal(t, 5, prepared)
	assert.Equal(t, 5, ran)
	assert.Equal(t, 5, result.Runs)
	assert.LessOrEqual(t, result.Min, result.Max)
	assert.LessOrEqual(t, result.Max, result.Total)
	assert.Equal(t, result.Total/5, result.Mean())
}

func TestMeasureTrialsExcludesPreparation(t *testing.T) {
	result := MeasureTrials(2,
		func() struct{} {
			time.Sleep(20 * time.Millisecond)
			return struct{}{}
		},
		func(struct{}) {},
	)

	assert.Less(t, result.Total, 20*time.Millisecond)
}

func TestMeasureTrialsZeroRuns(t *testing.T) {
	result := MeasureTrials(0, func() int { return 0 }, func(int) {})

	assert.Equal(t, TrialResult{}, result)
	assert.Equal(t, time.Duration(0), result.Mean())
}
