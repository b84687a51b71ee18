package payroll_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/BibekanandaBariki/technnext-hrms/internal/payroll"
	payrollerrors "github.com/BibekanandaBariki/technnext-hrms/internal/payroll/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func mustDecodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakePayrollService struct {
	processMonthFn  func(ctx context.Context, year, month int, actorID string) (payroll.ProcessMonthResult, error)
	getMyPayslipsFn func(ctx context.Context, userID string) ([]payroll.PayslipResponse, error)
}

func (f *fakePayrollService) ProcessMonth(ctx context.Context, year, month int, actorID string) (payroll.ProcessMonthResult, error) {
	return f.processMonthFn(ctx, year, month, actorID)
}

func (f *fakePayrollService) GetMyPayslips(ctx context.Context, userID string) ([]payroll.PayslipResponse, error) {
	return f.getMyPayslipsFn(ctx, userID)
}

func TestPayrollHandler_ProcessMonth(t *testing.T) {
	actorID := uuid.New().String()

	expected := payroll.ProcessMonthResult{
		Year:  2026,
		Month: 3,
		Records: []payroll.PayslipResponse{
			{
				ID:          uuid.New().String(),
				EmployeeID:  uuid.New().String(),
				Month:       3,
				Year:        2026,
				GrossSalary: 45000,
				PFDeduction: 1800,
				PFEmployer:  3600,
				NetSalary:   43000,
				Status:      payroll.StatusProcessed,
			},
		},
		SkippedCount:      1,
		FailedEmployeeIDs: []string{},
	}

	svc := &fakePayrollService{
		processMonthFn: func(ctx context.Context, year, month int, aid string) (payroll.ProcessMonthResult, error) {
			assert.Equal(t, 2026, year)
			assert.Equal(t, 3, month)
			assert.Equal(t, actorID, aid)
			return expected, nil
		},
	}

	h := payroll.NewHandler(svc, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/payroll/process?year=2026&month=3", nil)
	c.Set("user_id", actorID)

	h.ProcessMonth(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)

	var got payroll.ProcessMonthResult
	assert.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, expected, got)
}

func TestPayrollHandler_ProcessMonth_BadQuery(t *testing.T) {
	svc := &fakePayrollService{
		processMonthFn: func(ctx context.Context, year, month int, aid string) (payroll.ProcessMonthResult, error) {
			t.Fatal("service must not run on a malformed period")
			return payroll.ProcessMonthResult{}, nil
		},
	}

	h := payroll.NewHandler(svc, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/payroll/process?year=abc&month=3", nil)
	c.Set("user_id", uuid.New().String())

	h.ProcessMonth(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
}

func TestPayrollHandler_ProcessMonth_ServiceError(t *testing.T) {
	svc := &fakePayrollService{
		processMonthFn: func(ctx context.Context, year, month int, aid string) (payroll.ProcessMonthResult, error) {
			return payroll.ProcessMonthResult{}, payrollerrors.ErrInvalidPeriod
		},
	}

	h := payroll.NewHandler(svc, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/payroll/process?year=1999&month=3", nil)
	c.Set("user_id", uuid.New().String())

	h.ProcessMonth(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.NotNil(t, env.Error)
}

func TestPayrollHandler_ProcessMonth_IdempotencyCache(t *testing.T) {
	rdb, mock := redismock.NewClientMock()

	result := payroll.ProcessMonthResult{
		Year:  2026,
		Month: 5,
		Records: []payroll.PayslipResponse{
			{ID: uuid.New().String(), Month: 5, Year: 2026, NetSalary: 43000, Status: payroll.StatusProcessed},
		},
		FailedEmployeeIDs: []string{},
	}
	payload, err := json.Marshal(result)
	assert.NoError(t, err)

	cacheKey := "idem:payroll:key-1"
	lockKey := "idem:payroll:key-1:lock"
	mock.ExpectSet(cacheKey, payload, 24*time.Hour).SetVal("OK")
	mock.ExpectDel(lockKey).SetVal(1)

	svc := &fakePayrollService{
		processMonthFn: func(ctx context.Context, year, month int, aid string) (payroll.ProcessMonthResult, error) {
			return result, nil
		},
	}

	h := payroll.NewHandler(svc, rdb)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/payroll/process?year=2026&month=5", nil)
	c.Set("user_id", uuid.New().String())
	c.Set("idempotency_cache_key", cacheKey)
	c.Set("idempotency_lock_key", lockKey)

	h.ProcessMonth(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPayrollHandler_GetMyPayslips(t *testing.T) {
	userID := uuid.New().String()

	svc := &fakePayrollService{
		getMyPayslipsFn: func(ctx context.Context, uid string) ([]payroll.PayslipResponse, error) {
			assert.Equal(t, userID, uid)
			return []payroll.PayslipResponse{
				{ID: uuid.New().String(), Month: 4, Year: 2026, NetSalary: 43000, Status: payroll.StatusProcessed},
			}, nil
		},
	}

	h := payroll.NewHandler(svc, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/payroll/payslips", nil)
	c.Set("user_id", userID)

	h.GetMyPayslips(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)

	var got []payroll.PayslipResponse
	assert.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Len(t, got, 1)
	assert.Equal(t, int64(43000), got[0].NetSalary)
}
