package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/kshitijtanwar/wealthwise/middleware"
)

// stubAuth injects a fixed user id the way AuthMiddleware would.
func stubAuth(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Next()
	}
}

func newTestRouter(userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(stubAuth(userID))
	r.POST("/expenses", AddExpense)
	r.POST("/budgets", SetBudget)
	r.PUT("/budgets/salary-breakdown", SetSalaryBreakdown)
	r.POST("/goals", CreateGoal)
	return r
}

func postJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddExpense_MissingRequiredFields(t *testing.T) {
	r := newTestRouter("user-1")

	for _, body := range []string{
		`{}`,
		`{"amount": 100}`,
		`{"amount": 100, "date": "2025-06-01T00:00:00Z"}`,
		`{"date": "2025-06-01T00:00:00Z", "category": "groceries"}`,
		`{"amount": -5, "date": "2025-06-01T00:00:00Z", "category": "groceries"}`,
	} {
		w := postJSON(r, http.MethodPost, "/expenses", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
	}
}

func TestAddExpense_Unauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/expenses", AddExpense)

	w := postJSON(r, http.MethodPost, "/expenses", `{"amount": 1, "date": "2025-06-01T00:00:00Z", "category": "x"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSetBudget_Validation(t *testing.T) {
	r := newTestRouter("user-1")

	tests := []struct {
		name string
		body string
	}{
		{"missing category", `{"amount": 100}`},
		{"missing amount", `{"category": "groceries"}`},
		{"zero amount", `{"category": "groceries", "amount": 0}`},
		{"bad period", `{"category": "groceries", "amount": 100, "period": "daily"}`},
		{"notifyOn above 1", `{"category": "groceries", "amount": 100, "notifyOn": 1.5}`},
		{"negative notifyOn", `{"category": "groceries", "amount": 100, "notifyOn": -0.1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(r, http.MethodPost, "/budgets", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestSetSalaryBreakdown_ExceedsSalary(t *testing.T) {
	r := newTestRouter("user-1")

	w := postJSON(r, http.MethodPut, "/budgets/salary-breakdown",
		`{"salary": 50000, "savings": 20000, "expenses": 25000, "misc": 5001}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"excess":1`)
}

func TestSetSalaryBreakdown_NegativeInput(t *testing.T) {
	r := newTestRouter("user-1")

	w := postJSON(r, http.MethodPut, "/budgets/salary-breakdown",
		`{"salary": 50000, "savings": -1, "expenses": 0, "misc": 0}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateGoal_MissingAllocation(t *testing.T) {
	r := newTestRouter("user-1")

	w := postJSON(r, http.MethodPost, "/goals",
		`{"name": "House", "targetAmount": 100000, "durationYears": 5}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
