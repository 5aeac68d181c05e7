package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CrowdHailer/gleam-http/message/header/field"
)

func TestNew(t *testing.T) {
	f := field.New("Subject", "testing")
	assert.Equal(t, "Subject", f.Name())
	assert.Equal(t, "testing", f.Body())
	assert.Equal(t, "Subject: testing", f.String())
	assert.Equal(t, []byte("Subject: testing"), f.Bytes())
}

func TestSetRaw(t *testing.T) {
	f := field.New("Subject", "testing")
	f.SetRaw([]byte("X-Subject: testing"))
	assert.Equal(t, "X-Subject: testing", f.String())
	assert.Equal(t, "Subject", f.Name(), "SetRaw does not change the logical name")

	f.SetName("Subject")
	assert.Equal(t, "Subject: testing", f.String(), "SetName clears the raw override")
}

func TestSetBody(t *testing.T) {
	f := field.New("Subject", "testing")
	f.SetRaw([]byte("raw"))
	f.SetBody("foo bar baz")
	assert.Equal(t, "Subject: foo bar baz", f.String())
}

func TestClone(t *testing.T) {
	f := field.New("Subject", "testing")
	f.SetRaw([]byte("raw bytes"))

	clone := f.Clone()
	clone.SetRaw([]byte("different"))

	assert.Equal(t, "raw bytes", f.String())
	assert.Equal(t, "different", clone.String())
}
