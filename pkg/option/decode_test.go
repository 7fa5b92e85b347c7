package option

import (
	"testing"

	"github.com/bgrewell/fatread/pkg/logging"
	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults(t *testing.T) {
	o := Apply()
	assert.Zero(t, o.BaseOffset)
	assert.NotNil(t, o.Logger)
}

func TestApplyOptions(t *testing.T) {
	logger := logging.DefaultLogger()
	o := Apply(WithBaseOffset(63*512), WithLogger(logger))
	assert.EqualValues(t, 32256, o.BaseOffset)
	assert.Same(t, logger, o.Logger)
}

func TestApplyNilLogger(t *testing.T) {
	o := Apply(WithLogger(nil))
	assert.NotNil(t, o.Logger)
}
