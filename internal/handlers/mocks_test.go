package handlers

import (
	"context"

	"personal_profile/internal/models"
	"personal_profile/internal/service"
)

// Hand-written service mocks; each test fills in just the functions it
// needs and leaves the rest nil.

type mockAuth struct {
	registerFn func(in service.RegisterInput) (models.User, string, error)
	loginFn    func(in service.LoginInput) (models.User, string, error)
	logoutFn   func(token string) error
	validateFn func(token string) (int64, error)
	profileFn  func(userID int64) (models.User, error)
}

func (m *mockAuth) Register(_ context.Context, in service.RegisterInput) (models.User, string, error) {
	return m.registerFn(in)
}
func (m *mockAuth) Login(_ context.Context, in service.LoginInput) (models.User, string, error) {
	return m.loginFn(in)
}
func (m *mockAuth) Logout(_ context.Context, token string) error { return m.logoutFn(token) }
func (m *mockAuth) ValidateToken(_ context.Context, token string) (int64, error) {
	return m.validateFn(token)
}
func (m *mockAuth) Profile(_ context.Context, userID int64) (models.User, error) {
	return m.profileFn(userID)
}

type mockGoalSvc struct {
	listFn   func(userID int64, f models.GoalFilter) ([]models.Goal, error)
	createFn func(userID int64, in service.GoalInput) (models.Goal, error)
	updateFn func(userID, id int64, in service.GoalPatch) (models.Goal, error)
	deleteFn func(userID, id int64) error
}

func (m *mockGoalSvc) List(_ context.Context, userID int64, f models.GoalFilter) ([]models.Goal, error) {
	return m.listFn(userID, f)
}
func (m *mockGoalSvc) Create(_ context.Context, userID int64, in service.GoalInput) (models.Goal, error) {
	return m.createFn(userID, in)
}
func (m *mockGoalSvc) Update(_ context.Context, userID, id int64, in service.GoalPatch) (models.Goal, error) {
	return m.updateFn(userID, id, in)
}
func (m *mockGoalSvc) Delete(_ context.Context, userID, id int64) error {
	return m.deleteFn(userID, id)
}

type mockExpenseSvc struct {
	listFn   func(userID int64, f models.ExpenseFilter) ([]models.Expense, error)
	createFn func(userID int64, in service.ExpenseInput) (models.Expense, error)
	updateFn func(userID, id int64, in service.ExpensePatch) (models.Expense, error)
	deleteFn func(userID, id int64) error
}

func (m *mockExpenseSvc) List(_ context.Context, userID int64, f models.ExpenseFilter) ([]models.Expense, error) {
	return m.listFn(userID, f)
}
func (m *mockExpenseSvc) Create(_ context.Context, userID int64, in service.ExpenseInput) (models.Expense, error) {
	return m.createFn(userID, in)
}
func (m *mockExpenseSvc) Update(_ context.Context, userID, id int64, in service.ExpensePatch) (models.Expense, error) {
	return m.updateFn(userID, id, in)
}
func (m *mockExpenseSvc) Delete(_ context.Context, userID, id int64) error {
	return m.deleteFn(userID, id)
}

type mockConfidentialSvc struct {
	listFn   func(userID int64, f models.SearchFilter) ([]models.ConfidentialDetail, error)
	createFn func(userID int64, in service.ConfidentialInput) (models.ConfidentialDetail, error)
	updateFn func(userID, id int64, in service.ConfidentialPatch) (models.ConfidentialDetail, error)
	deleteFn func(userID, id int64) error
}

func (m *mockConfidentialSvc) List(_ context.Context, userID int64, f models.SearchFilter) ([]models.ConfidentialDetail, error) {
	return m.listFn(userID, f)
}
func (m *mockConfidentialSvc) Create(_ context.Context, userID int64, in service.ConfidentialInput) (models.ConfidentialDetail, error) {
	return m.createFn(userID, in)
}
func (m *mockConfidentialSvc) Update(_ context.Context, userID, id int64, in service.ConfidentialPatch) (models.ConfidentialDetail, error) {
	return m.updateFn(userID, id, in)
}
func (m *mockConfidentialSvc) Delete(_ context.Context, userID, id int64) error {
	return m.deleteFn(userID, id)
}

// allowAllAuth authenticates any non-empty token as the given user.
func allowAllAuth(uid int64) *mockAuth {
	return &mockAuth{
		validateFn: func(string) (int64, error) { return uid, nil },
	}
}
