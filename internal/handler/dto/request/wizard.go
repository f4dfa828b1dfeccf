package request

import (
	"tour-booking-console/internal/domain/wizard"
	"tour-booking-console/internal/usecase/commands"

	"github.com/google/uuid"
)

type RejectRequest struct {
	Reason string `json:"reason" binding:"required,max=2000"`
}

type RequestUpdateRequest struct {
	Message string `json:"message" binding:"required,max=2000"`
}

type ComplaintRequest struct {
	Message string `json:"message" binding:"required,max=2000"`
}

type StageInsuranceRequest struct {
	GuestID uuid.UUID `json:"guest_id" binding:"required"`
	Status  string    `json:"status" binding:"required,max=64"`
}

type GoToRequest struct {
	Step int `json:"step" binding:"required,min=1,max=3"`
}

func (r *GoToRequest) ToDomain() wizard.Step {
	return wizard.Step(r.Step)
}

type LeaveRequest struct {
	Kind string `json:"kind" binding:"required,oneof=close back link"`
	Path string `json:"path" binding:"required_if=Kind link,max=2048"`
}

func (r *LeaveRequest) ToDomain() commands.LeaveIntent {
	return commands.LeaveIntent{Kind: commands.LeaveKind(r.Kind), Path: r.Path}
}
