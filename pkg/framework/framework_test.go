// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package framework

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameworkHasNoFields(t *testing.T) {
	assert.Equal(t, 0, reflect.TypeOf(Framework{}).NumField())
	assert.Equal(t, Framework{}, Default)
}

func TestStart(t *testing.T) {
	var buf bytes.Buffer
	got, err := Start(&buf)
	require.NoError(t, err)

	assert.Equal(t, Default, got)
	assert.Equal(t,
		"🚀 MoneyWorks AI Accountant Framework\n📊 Initializing business intelligence layer...\n",
		buf.String())
}

func TestStartWriteFailure(t *testing.T) {
	_, err := Start(errWriter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }
