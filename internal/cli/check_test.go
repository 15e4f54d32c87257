package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/0reilly/github-api-rate-limit-tester/internal/http"
)

const rateLimitBody = `{
  "resources": {
    "core": {"limit": 5000, "used": 7, "remaining": 4993, "reset": 1709294400},
    "search": {"limit": 30, "used": 0, "remaining": 30, "reset": 1709290860}
  },
  "rate": {"limit": 5000, "used": 7, "remaining": 4993, "reset": 1709294400}
}`

func TestParseCoreQuota(t *testing.T) {
	quota := parseCoreQuota(rateLimitBody)

	assert.EqualValues(t, 5000, quota.Limit)
	assert.EqualValues(t, 7, quota.Used)
	assert.EqualValues(t, 4993, quota.Remaining)
	assert.True(t, quota.Reset.Equal(time.Unix(1709294400, 0)))
}

func TestParseCoreQuota_EmptyBody(t *testing.T) {
	quota := parseCoreQuota("")

	assert.Zero(t, quota.Limit)
	assert.Zero(t, quota.Remaining)
}

func TestDescribeFailure(t *testing.T) {
	resp := &http.Response{
		StatusCode: 403,
		Status:     "403 Forbidden",
	}
	assert.Equal(t, "403 Forbidden", describeFailure(resp))
}
