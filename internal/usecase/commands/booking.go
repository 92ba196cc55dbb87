package commands

import (
	"context"
	"fmt"

	"workshop-booking/internal/domain/booking"
	"workshop-booking/internal/domain/mechanic"
	"workshop-booking/internal/infra"
	"workshop-booking/internal/pkg/errs"
	"workshop-booking/internal/pkg/metrics"
	"workshop-booking/internal/pkg/patch"
	"workshop-booking/internal/usecase/shared"
)

// RejectionReason classifies a business rejection. Rejections are successful
// determinations with a negative outcome, carried in the result, never in the
// error return.
type RejectionReason string

const (
	ReasonDuplicateDate RejectionReason = "duplicate_date"
	ReasonMechanicFull  RejectionReason = "mechanic_full"
)

// User-visible admission messages: the caller renders these verbatim, so the
// reason (date conflict vs capacity) must stay distinguishable.
const (
	MsgAdmitted      = "your appointment has been booked"
	MsgUpdated       = "appointment updated"
	MsgDuplicateDate = "you already have an appointment on this date"
	MsgMechanicFull  = "this mechanic is fully booked for this date; please choose another mechanic or date"
)

type AdmissionResult struct {
	Admitted  bool
	Reason    RejectionReason
	Message   string
	BookingID int64
}

func admitted(id int64, msg string) *AdmissionResult {
	return &AdmissionResult{Admitted: true, Message: msg, BookingID: id}
}

func rejected(reason RejectionReason) *AdmissionResult {
	msg := MsgDuplicateDate
	if reason == ReasonMechanicFull {
		msg = MsgMechanicFull
	}
	return &AdmissionResult{Admitted: false, Reason: reason, Message: msg}
}

type CreateBookingInput struct {
	RequesterName string
	Address       string
	Phone         string
	LicenseNo     string
	EngineNo      string
	Date          string
	MechanicID    int64
}

func (in CreateBookingInput) toDomain() (*booking.Booking, error) {
	date, err := booking.ParseAppointmentDate(in.Date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	entity, err := booking.NewBooking(
		in.RequesterName,
		in.Address,
		in.Phone,
		in.LicenseNo,
		in.EngineNo,
		date,
		in.MechanicID,
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	return entity, nil
}

// UpdateBookingInput is a partial patch; nil fields keep the stored value.
type UpdateBookingInput struct {
	RequesterName *string
	Address       *string
	Phone         *string
	LicenseNo     *string
	EngineNo      *string
	Date          *string
	MechanicID    *int64
	Status        *string
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, in CreateBookingInput) (*AdmissionResult, error)
	UpdateBooking(ctx context.Context, id int64, in UpdateBookingInput) (*AdmissionResult, error)
	DeleteBooking(ctx context.Context, id int64) error
}

type bookingCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewBookingCommands(uow shared.UnitOfWork) BookingCommands {
	return &bookingCommandsImpl{
		uow: uow,
	}
}

// CreateBooking is the admission path: the duplicate and capacity checks plus
// the insert run as one serialized unit per admission key, so two concurrent
// requests can never both observe a free slot and both insert.
func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, in CreateBookingInput) (*AdmissionResult, error) {
	entity, err := in.toDomain()
	if err != nil {
		return nil, err
	}

	var result *AdmissionResult
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		mech, err := c.mechanicByID(ctx, tx, entity.MechanicID())
		if err != nil {
			return err
		}

		outcome, err := c.admit(ctx, tx, entity, mech, 0)
		if err != nil {
			return err
		}
		if outcome != nil {
			result = outcome
			return nil
		}

		id, err := tx.Bookings().Create(ctx, tx.DB(), entity)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		result = admitted(id, MsgAdmitted)
		return nil
	})
	if err != nil {
		return nil, err
	}

	countAdmission(result)
	return result, nil
}

func (c *bookingCommandsImpl) UpdateBooking(ctx context.Context, id int64, in UpdateBookingInput) (*AdmissionResult, error) {
	var result *AdmissionResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cur, err := tx.Reads().BookingByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrBookingNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		entity, err := mergePatch(cur, in)
		if err != nil {
			return err
		}

		// The duplicate and capacity checks only matter when an admission key
		// moves; pure field edits (including status relabels) commit without
		// re-validation.
		needsRecheck := entity.Phone() != cur.Phone ||
			!entity.Date().Equal(cur.Date) ||
			entity.MechanicID() != cur.MechanicID

		if needsRecheck {
			mech, err := c.mechanicByID(ctx, tx, entity.MechanicID())
			if err != nil {
				return err
			}

			outcome, err := c.admit(ctx, tx, entity, mech, id)
			if err != nil {
				return err
			}
			if outcome != nil {
				// Rejection leaves the stored record untouched: the UPDATE
				// below is never reached on this path.
				result = outcome
				return nil
			}
		}

		if err := tx.Bookings().Update(ctx, tx.DB(), id, entity); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrBookingNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		result = admitted(id, MsgUpdated)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// DeleteBooking removes by identity. Deletion only frees slots, so no
// admission re-check happens here.
func (c *bookingCommandsImpl) DeleteBooking(ctx context.Context, id int64) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Bookings().Delete(ctx, tx.DB(), id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrBookingNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// admit runs the two invariant checks under the admission locks. It returns a
// non-nil rejection result on violation, (nil, nil) when the slot is free.
// excludeID > 0 exempts the record being updated from its own footprint.
func (c *bookingCommandsImpl) admit(
	ctx context.Context,
	tx shared.Tx,
	entity *booking.Booking,
	mech *mechanic.Mechanic,
	excludeID int64,
) (*AdmissionResult, error) {
	keys := admissionKeys(entity.Phone(), entity.MechanicID(), entity.Date())
	if err := tx.LockAdmissionKeys(ctx, keys...); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	taken, err := tx.Reads().HasBookingOnDate(ctx, entity.Phone(), entity.Date(), excludeID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if taken {
		return rejected(ReasonDuplicateDate), nil
	}

	count, err := tx.Reads().CountBookings(ctx, entity.MechanicID(), entity.Date(), excludeID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !mech.HasCapacityFor(count) {
		return rejected(ReasonMechanicFull), nil
	}

	return nil, nil
}

func (c *bookingCommandsImpl) mechanicByID(ctx context.Context, tx shared.Tx, id int64) (*mechanic.Mechanic, error) {
	snap, err := tx.Reads().MechanicByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrMechanicNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	mech, err := mechanic.NewMechanic(snap.ID, snap.Name, snap.Specialty, snap.DailyCapacity)
	if err != nil {
		return nil, errs.Wrap(err, "stored mechanic record is invalid")
	}
	return mech, nil
}

func mergePatch(cur *shared.BookingSnapshot, in UpdateBookingInput) (*booking.Booking, error) {
	date := cur.Date
	if in.Date != nil {
		parsed, err := booking.ParseAppointmentDate(*in.Date)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		date = parsed
	}

	entity, err := booking.NewBooking(
		patch.Coalesce(in.RequesterName, cur.RequesterName),
		patch.Coalesce(in.Address, cur.Address),
		patch.Coalesce(in.Phone, cur.Phone),
		patch.Coalesce(in.LicenseNo, cur.LicenseNo),
		patch.Coalesce(in.EngineNo, cur.EngineNo),
		date,
		patch.Coalesce(in.MechanicID, cur.MechanicID),
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	entity.ChangeStatus(patch.Coalesce(in.Status, cur.Status))
	return entity, nil
}

func admissionKeys(phone string, mechanicID int64, date booking.AppointmentDate) []string {
	return []string{
		fmt.Sprintf("booking:requester:%s:%s", phone, date),
		fmt.Sprintf("booking:slot:%d:%s", mechanicID, date),
	}
}

func countAdmission(result *AdmissionResult) {
	if result == nil {
		return
	}
	if result.Admitted {
		metrics.BookingsAdmitted.Inc()
		return
	}
	metrics.BookingsRejected.WithLabelValues(string(result.Reason)).Inc()
}
