package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "eventhub/internal/errors"
	"eventhub/internal/model"
)

func TestRegistrationService_RegisterUserToEvent(t *testing.T) {
	tests := []struct {
		name          string
		userID        uint
		eventID       uint
		setupMock     func(*MockUserRepository, *MockMembershipRepository)
		expectedError error
	}{
		{
			name:    "successful registration",
			userID:  1,
			eventID: 10,
			setupMock: func(users *MockUserRepository, memberships *MockMembershipRepository) {
				users.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1}, nil)
				memberships.On("EventMembershipExists", mock.Anything, uint(1), uint(10)).Return(false, nil)
				memberships.On("CreateEventMembership", mock.Anything, mock.AnythingOfType("*model.EventMembership")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:    "user does not exist",
			userID:  99,
			eventID: 10,
			setupMock: func(users *MockUserRepository, memberships *MockMembershipRepository) {
				users.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrUserNotFound,
		},
		{
			name:    "already registered, caught by pre-check",
			userID:  1,
			eventID: 10,
			setupMock: func(users *MockUserRepository, memberships *MockMembershipRepository) {
				users.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1}, nil)
				memberships.On("EventMembershipExists", mock.Anything, uint(1), uint(10)).Return(true, nil)
			},
			expectedError: apperrors.ErrAlreadyRegistered,
		},
		{
			// Concurrent identical request slipped past the pre-check; the
			// unique index on (user_id, event_id) is what actually decides.
			name:    "already registered, caught by unique index",
			userID:  1,
			eventID: 10,
			setupMock: func(users *MockUserRepository, memberships *MockMembershipRepository) {
				users.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1}, nil)
				memberships.On("EventMembershipExists", mock.Anything, uint(1), uint(10)).Return(false, nil)
				memberships.On("CreateEventMembership", mock.Anything, mock.AnythingOfType("*model.EventMembership")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: apperrors.ErrAlreadyRegistered,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := new(MockUserRepository)
			mockMemberships := new(MockMembershipRepository)
			tt.setupMock(mockUsers, mockMemberships)

			service := NewRegistrationService(mockUsers, mockMemberships)
			err := service.RegisterUserToEvent(context.Background(), tt.userID, tt.eventID)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}

			mockUsers.AssertExpectations(t)
			mockMemberships.AssertExpectations(t)
		})
	}
}

func TestRegistrationService_UnregisterUserFromEvent(t *testing.T) {
	tests := []struct {
		name          string
		rowsAffected  int64
		expectedError error
	}{
		{
			name:          "successful unregistration",
			rowsAffected:  1,
			expectedError: nil,
		},
		{
			name:          "pair does not exist",
			rowsAffected:  0,
			expectedError: apperrors.ErrNotRegistered,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := new(MockUserRepository)
			mockMemberships := new(MockMembershipRepository)
			mockMemberships.On("DeleteEventMembership", mock.Anything, uint(1), uint(10)).Return(tt.rowsAffected, nil)

			service := NewRegistrationService(mockUsers, mockMemberships)
			err := service.UnregisterUserFromEvent(context.Background(), 1, 10)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}

			mockMemberships.AssertExpectations(t)
		})
	}
}

// Unregister must not double-succeed: once the pair is gone, every further
// call reports not registered.
func TestRegistrationService_UnregisterTwice(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockMemberships := new(MockMembershipRepository)
	mockMemberships.On("DeleteEventMembership", mock.Anything, uint(1), uint(10)).Return(int64(1), nil).Once()
	mockMemberships.On("DeleteEventMembership", mock.Anything, uint(1), uint(10)).Return(int64(0), nil)

	service := NewRegistrationService(mockUsers, mockMemberships)

	assert.NoError(t, service.UnregisterUserFromEvent(context.Background(), 1, 10))
	assert.Equal(t, apperrors.ErrNotRegistered, service.UnregisterUserFromEvent(context.Background(), 1, 10))
}

func TestRegistrationService_CheckRegistrationStatus(t *testing.T) {
	tests := []struct {
		name       string
		registered bool
	}{
		{name: "registered", registered: true},
		{name: "absence is a valid answer, not an error", registered: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := new(MockUserRepository)
			mockMemberships := new(MockMembershipRepository)
			mockMemberships.On("EventMembershipExists", mock.Anything, uint(1), uint(10)).Return(tt.registered, nil)

			service := NewRegistrationService(mockUsers, mockMemberships)
			registered, err := service.CheckRegistrationStatus(context.Background(), 1, 10)

			assert.NoError(t, err)
			assert.Equal(t, tt.registered, registered)

			mockMemberships.AssertExpectations(t)
		})
	}
}

// Register, duplicate register, check, unregister, check: the full lifecycle
// a client walks through.
func TestRegistrationService_Lifecycle(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1, Username: "alice"}, nil)

	mockMemberships := new(MockMembershipRepository)
	mockMemberships.On("EventMembershipExists", mock.Anything, uint(1), uint(10)).Return(false, nil).Once()
	mockMemberships.On("CreateEventMembership", mock.Anything, mock.AnythingOfType("*model.EventMembership")).Return(nil).Once()
	mockMemberships.On("EventMembershipExists", mock.Anything, uint(1), uint(10)).Return(true, nil).Twice()
	mockMemberships.On("DeleteEventMembership", mock.Anything, uint(1), uint(10)).Return(int64(1), nil).Once()
	mockMemberships.On("EventMembershipExists", mock.Anything, uint(1), uint(10)).Return(false, nil).Once()

	service := NewRegistrationService(mockUsers, mockMemberships)
	ctx := context.Background()

	assert.NoError(t, service.RegisterUserToEvent(ctx, 1, 10))
	assert.Equal(t, apperrors.ErrAlreadyRegistered, service.RegisterUserToEvent(ctx, 1, 10))

	registered, err := service.CheckRegistrationStatus(ctx, 1, 10)
	assert.NoError(t, err)
	assert.True(t, registered)

	assert.NoError(t, service.UnregisterUserFromEvent(ctx, 1, 10))

	registered, err = service.CheckRegistrationStatus(ctx, 1, 10)
	assert.NoError(t, err)
	assert.False(t, registered)

	mockMemberships.AssertExpectations(t)
}
