// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/consensys/go-epistemic/pkg/conditional"
	"github.com/consensys/go-epistemic/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Config_01(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func Test_Config_02(t *testing.T) {
	cfg, err := Parse([]byte(`
policy: fail
log-level: debug
colour: never
debounce: 1s
jobs: 3
`))
	require.NoError(t, err)
	assert.Equal(t, conditional.FailOnPartial, cfg.Policy)
	assert.Equal(t, termio.COLOUR_NEVER, cfg.Colour)
	assert.Equal(t, time.Second, cfg.Debounce)
	assert.Equal(t, 3, cfg.Jobs)
	//
	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, level)
}

func Test_Config_03(t *testing.T) {
	_, err := Parse([]byte("policy: sometimes\n"))
	assert.ErrorContains(t, err, "unknown policy")
	//
	_, err = Parse([]byte("polcy: strict\n"))
	assert.Error(t, err)
	//
	_, err = Parse([]byte("log-level: chatty\n"))
	assert.Error(t, err)
	//
	_, err = Parse([]byte("jobs: 0\n"))
	assert.Error(t, err)
}

func Test_Config_04(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "epistemic.yaml")
	require.NoError(t, os.WriteFile(filename, []byte("policy: strict\n"), 0o600))
	//
	cfg, err := Load(filename)
	require.NoError(t, err)
	assert.Equal(t, conditional.Strict, cfg.Policy)
	assert.Equal(t, Default().Jobs, cfg.Jobs)
	//
	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
