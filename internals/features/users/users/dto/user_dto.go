// dto/user_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"eduplay_backend/internals/features/users/users/model"
)

/* ========== REQUEST DTOs ========== */

type CreateUserRequest struct {
	UserName        string     `json:"user_name"         form:"user_name"         validate:"required,min=2,max=160"`
	UserUsername    string     `json:"user_username"     form:"user_username"     validate:"required,min=3,max=80"`
	UserRole        string     `json:"user_role"         form:"user_role"         validate:"required,oneof=student teacher admin"`
	UserSchoolID    *uuid.UUID `json:"user_school_id"    form:"user_school_id"`
	UserClassroomID *uuid.UUID `json:"user_classroom_id" form:"user_classroom_id"`
	UserEnrollment  *string    `json:"user_enrollment"   form:"user_enrollment"   validate:"omitempty,max=40"`
	UserYear        *string    `json:"user_year"         form:"user_year"         validate:"omitempty,max=40"`
	UserState       *string    `json:"user_state"        form:"user_state"        validate:"omitempty,len=2"`
	UserCity        *string    `json:"user_city"         form:"user_city"         validate:"omitempty,max=120"`
}

// UpdateUserRequest is the fixed patch surface for users. Every field is
// optional; only set fields reach the UPDATE, via Patch().
type UpdateUserRequest struct {
	UserName        *string    `json:"user_name"         form:"user_name"         validate:"omitempty,min=2,max=160"`
	UserUsername    *string    `json:"user_username"     form:"user_username"     validate:"omitempty,min=3,max=80"`
	UserRole        *string    `json:"user_role"         form:"user_role"         validate:"omitempty,oneof=student teacher admin"`
	UserSchoolID    *uuid.UUID `json:"user_school_id"    form:"user_school_id"`
	UserClassroomID *uuid.UUID `json:"user_classroom_id" form:"user_classroom_id"`
	UserEnrollment  *string    `json:"user_enrollment"   form:"user_enrollment"   validate:"omitempty,max=40"`
	UserYear        *string    `json:"user_year"         form:"user_year"         validate:"omitempty,max=40"`
	UserState       *string    `json:"user_state"        form:"user_state"        validate:"omitempty,len=2"`
	UserCity        *string    `json:"user_city"         form:"user_city"         validate:"omitempty,max=120"`
}

/* ========== RESPONSE DTO ========== */

type UserResponse struct {
	UserID          uuid.UUID  `json:"user_id"`
	UserName        string     `json:"user_name"`
	UserUsername    string     `json:"user_username"`
	UserRole        string     `json:"user_role"`
	UserSchoolID    *uuid.UUID `json:"user_school_id,omitempty"`
	UserClassroomID *uuid.UUID `json:"user_classroom_id,omitempty"`
	UserEnrollment  *string    `json:"user_enrollment,omitempty"`
	UserYear        *string    `json:"user_year,omitempty"`
	UserState       *string    `json:"user_state,omitempty"`
	UserCity        *string    `json:"user_city,omitempty"`
	UserIsActive    bool       `json:"user_is_active"`
	UserCreatedAt   time.Time  `json:"user_created_at"`
	UserUpdatedAt   *time.Time `json:"user_updated_at,omitempty"`
}

func NewUserResponse(m *model.UserModel) *UserResponse {
	if m == nil {
		return nil
	}
	return &UserResponse{
		UserID:          m.UserID,
		UserName:        m.UserName,
		UserUsername:    m.UserUsername,
		UserRole:        m.UserRole,
		UserSchoolID:    m.UserSchoolID,
		UserClassroomID: m.UserClassroomID,
		UserEnrollment:  m.UserEnrollment,
		UserYear:        m.UserYear,
		UserState:       m.UserState,
		UserCity:        m.UserCity,
		UserIsActive:    m.UserIsActive,
		UserCreatedAt:   m.UserCreatedAt,
		UserUpdatedAt:   m.UserUpdatedAt,
	}
}

func (r *CreateUserRequest) ToModel() *model.UserModel {
	m := &model.UserModel{
		UserName:        strings.TrimSpace(r.UserName),
		UserUsername:    strings.TrimSpace(r.UserUsername),
		UserRole:        r.UserRole,
		UserSchoolID:    r.UserSchoolID,
		UserClassroomID: r.UserClassroomID,
		UserEnrollment:  r.UserEnrollment,
		UserYear:        r.UserYear,
		UserCity:        r.UserCity,
		UserIsActive:    true,
	}
	if r.UserState != nil {
		s := strings.ToUpper(strings.TrimSpace(*r.UserState))
		m.UserState = &s
	}
	return m
}

// Patch builds the column map from the fixed field list above. Request keys
// never reach the statement directly.
func (r *UpdateUserRequest) Patch() map[string]interface{} {
	patch := map[string]interface{}{}
	if r.UserName != nil {
		patch["user_name"] = strings.TrimSpace(*r.UserName)
	}
	if r.UserUsername != nil {
		patch["user_username"] = strings.TrimSpace(*r.UserUsername)
	}
	if r.UserRole != nil {
		patch["user_role"] = *r.UserRole
	}
	if r.UserSchoolID != nil {
		patch["user_school_id"] = *r.UserSchoolID
	}
	if r.UserClassroomID != nil {
		patch["user_classroom_id"] = *r.UserClassroomID
	}
	if r.UserEnrollment != nil {
		patch["user_enrollment"] = *r.UserEnrollment
	}
	if r.UserYear != nil {
		patch["user_year"] = *r.UserYear
	}
	if r.UserState != nil {
		patch["user_state"] = strings.ToUpper(strings.TrimSpace(*r.UserState))
	}
	if r.UserCity != nil {
		patch["user_city"] = *r.UserCity
	}
	if len(patch) > 0 {
		patch["user_updated_at"] = time.Now()
	}
	return patch
}
