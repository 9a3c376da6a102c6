package rbac

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestTableAllows(t *testing.T) {
	table := NewTable()

	assert.True(t, table.Allows("super_admin", ManageExams))
	assert.True(t, table.Allows("super_admin", TakeExams))
	assert.True(t, table.Allows("admin", ManageExams))
	assert.True(t, table.Allows("admin", ViewReports))
	assert.False(t, table.Allows("admin", TakeExams))
	assert.True(t, table.Allows("student", TakeExams))
	assert.True(t, table.Allows("student", ViewOwnResults))
	assert.False(t, table.Allows("student", ManageExams))
	assert.False(t, table.Allows("", ManageExams))
	assert.False(t, table.Allows("auditor", ViewReports))
}

func TestRequireMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/reports", Require(NewTable(), ViewReports), func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	cases := []struct {
		role   string
		status int
	}{
		{"admin", http.StatusOK},
		{"super_admin", http.StatusOK},
		{"student", http.StatusForbidden},
		{"", http.StatusForbidden},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/reports", nil)
		if tc.role != "" {
			req.Header.Set("X-User-Role", tc.role)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, tc.status, w.Code, "role %q", tc.role)
	}
}
