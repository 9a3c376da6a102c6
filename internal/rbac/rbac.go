package rbac

import (
	"net/http"

	"github.com/anayon/examhub/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type Permission string

const (
	ManageExams    Permission = "manage_exams"
	ViewReports    Permission = "view_reports"
	TakeExams      Permission = "take_exams"
	ViewOwnResults Permission = "view_own_results"
)

// Table is an immutable role -> permission lookup, built once at startup and
// shared by reference. Never mutated at runtime.
type Table struct {
	grants map[string]map[Permission]bool
}

// NewTable builds the default role table. Authentication itself is external;
// the gateway resolves the subject and forwards the role in X-User-Role.
func NewTable() *Table {
	grant := func(perms ...Permission) map[Permission]bool {
		m := make(map[Permission]bool, len(perms))
		for _, p := range perms {
			m[p] = true
		}
		return m
	}
	return &Table{grants: map[string]map[Permission]bool{
		"super_admin": grant(ManageExams, ViewReports, TakeExams, ViewOwnResults),
		"admin":       grant(ManageExams, ViewReports),
		"student":     grant(TakeExams, ViewOwnResults),
	}}
}

func (t *Table) Allows(role string, p Permission) bool {
	return t.grants[role][p]
}

// Require gates a route group on one permission.
func Require(table *Table, p Permission) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		role := ctx.GetHeader("X-User-Role")
		if !table.Allows(role, p) {
			log.Warn().Str("role", role).Str("permission", string(p)).Str("path", ctx.FullPath()).Msg("Permission denied")
			ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Insufficient permissions"})
			return
		}
		ctx.Next()
	}
}
