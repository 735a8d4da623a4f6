// internal/common/camunda/client_test.go
package camunda

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	commonerrors "talentmatch-workers/internal/common/errors"
)

func TestIsRetryableZeebeError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		retryable bool
	}{
		{"connection refused", errors.New("dial tcp: connection refused"), true},
		{"deadline exceeded", errors.New("context deadline exceeded"), true},
		{"unavailable", errors.New("rpc error: code = Unavailable"), true},
		{"invalid argument", errors.New("rpc error: code = InvalidArgument"), false},
		{"not found", errors.New("process definition not found"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.retryable, isRetryableZeebeError(tt.err))
		})
	}
}

func TestMapZeebeError(t *testing.T) {
	c := &Client{config: &ClientConfig{RetryConfig: DefaultRetryConfig}}

	timeoutErr := c.mapZeebeError(errors.New("context deadline exceeded"), "complete-job", 2)
	var se *commonerrors.StandardError
	assert.ErrorAs(t, timeoutErr, &se)
	assert.Equal(t, commonerrors.ErrorCode("TIMEOUT_ERROR"), se.Code)
	assert.True(t, se.Retryable)

	otherErr := c.mapZeebeError(errors.New("rpc error: code = Internal"), "throw-error", 0)
	assert.ErrorAs(t, otherErr, &se)
	assert.Equal(t, commonerrors.ErrorCode("EXTERNAL_SERVICE_ERROR"), se.Code)
}
