package service

import (
	"context"

	"github.com/Astemirdum/library-catalog/library/internal/errs"
	"github.com/Astemirdum/library-catalog/library/internal/model"
	"github.com/Astemirdum/library-catalog/library/internal/policy"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// RenewalPeriodDays is how far past today a renewal is proposed.
const RenewalPeriodDays = 21

func ProposeRenewal(today model.Date) model.Date {
	return today.AddDays(RenewalPeriodDays)
}

func (s *Service) checkDueDate(due model.Date) error {
	today := s.today()
	if due.IsZero() {
		return errors.Wrap(errs.ErrInvalidDate, "due date is required")
	}
	if !due.After(today.Time) {
		return errors.Wrapf(errs.ErrInvalidDate, "due date %s is not after today %s", due, today)
	}
	if s.cfg.MaxRenewalDays > 0 && due.After(today.AddDays(s.cfg.MaxRenewalDays).Time) {
		return errors.Wrapf(errs.ErrInvalidDate, "due date %s is more than %d days ahead", due, s.cfg.MaxRenewalDays)
	}
	return nil
}

func requireOnLoan(bi *model.BookInstance) error {
	if bi.Status != model.StatusOnLoan {
		return errors.Wrapf(errs.ErrInvalidState, "instance %s is %s, not on loan", bi.ID, bi.Status.Label())
	}
	return nil
}

// RenewalProposal returns the instance together with the suggested new due date.
func (s *Service) RenewalProposal(ctx context.Context, actor policy.Actor, id uuid.UUID) (model.RenewProposal, error) {
	if err := policy.Require(actor, policy.CanMarkReturned, "renew loan"); err != nil {
		return model.RenewProposal{}, err
	}
	bi, err := call(ctx, s.cfg.OperationTimeout, func(ctx context.Context) (model.BookInstance, error) {
		return s.repo.GetInstance(ctx, id)
	})
	if err != nil {
		return model.RenewProposal{}, err
	}
	if err = requireOnLoan(&bi); err != nil {
		return model.RenewProposal{}, err
	}
	return model.RenewProposal{Instance: bi, DueBack: ProposeRenewal(s.today())}, nil
}

// Renew moves the due date of an on-loan instance. Status and borrower are untouched.
// A copy that is not on loan fails with ErrInvalidState whatever the date.
func (s *Service) Renew(ctx context.Context, actor policy.Actor, id uuid.UUID, due model.Date) (model.BookInstance, error) {
	if err := policy.Require(actor, policy.CanMarkReturned, "renew loan"); err != nil {
		return model.BookInstance{}, err
	}
	bi, err := call(ctx, s.cfg.OperationTimeout, func(ctx context.Context) (model.BookInstance, error) {
		return s.repo.UpdateInstance(ctx, id, func(bi *model.BookInstance) error {
			if err := requireOnLoan(bi); err != nil {
				return err
			}
			if err := s.checkDueDate(due); err != nil {
				return err
			}
			d := due
			bi.DueBack = &d
			return nil
		})
	})
	if err != nil {
		return model.BookInstance{}, err
	}
	s.log.Info("loan renewed", zap.Stringer("instance", id), zap.Stringer("dueBack", due), zap.String("by", actor.UserName))
	s.publish(ctx, model.EventLoanRenewed, actor.UserName, bi)
	return bi, nil
}

// Checkout lends an available or reserved instance to borrower.
func (s *Service) Checkout(ctx context.Context, actor policy.Actor, id uuid.UUID, borrower string, due model.Date) (model.BookInstance, error) {
	if err := policy.Require(actor, policy.CanMarkReturned, "check out book"); err != nil {
		return model.BookInstance{}, err
	}
	if borrower == "" {
		return model.BookInstance{}, errors.Wrap(errs.ErrInvalidState, "borrower is required")
	}
	if err := s.checkDueDate(due); err != nil {
		return model.BookInstance{}, err
	}
	bi, err := call(ctx, s.cfg.OperationTimeout, func(ctx context.Context) (model.BookInstance, error) {
		return s.repo.UpdateInstance(ctx, id, func(bi *model.BookInstance) error {
			if bi.Status != model.StatusAvailable && bi.Status != model.StatusReserved {
				return errors.Wrapf(errs.ErrInvalidState, "instance %s is %s", bi.ID, bi.Status.Label())
			}
			d, b := due, borrower
			bi.Status, bi.DueBack, bi.Borrower = model.StatusOnLoan, &d, &b
			return nil
		})
	})
	if err != nil {
		return model.BookInstance{}, err
	}
	s.publish(ctx, model.EventLoanCheckedOut, actor.UserName, bi)
	return bi, nil
}

// MarkReturned puts an on-loan instance back on the shelf.
func (s *Service) MarkReturned(ctx context.Context, actor policy.Actor, id uuid.UUID) (model.BookInstance, error) {
	if err := policy.Require(actor, policy.CanMarkReturned, "mark book returned"); err != nil {
		return model.BookInstance{}, err
	}
	bi, err := call(ctx, s.cfg.OperationTimeout, func(ctx context.Context) (model.BookInstance, error) {
		return s.repo.UpdateInstance(ctx, id, func(bi *model.BookInstance) error {
			if err := requireOnLoan(bi); err != nil {
				return err
			}
			bi.Status, bi.DueBack, bi.Borrower = model.StatusAvailable, nil, nil
			return nil
		})
	})
	if err != nil {
		return model.BookInstance{}, err
	}
	s.publish(ctx, model.EventLoanReturned, actor.UserName, bi)
	return bi, nil
}

func (s *Service) AddInstance(ctx context.Context, actor policy.Actor, bookID int64, imprint string) (model.BookInstance, error) {
	if err := policy.Require(actor, policy.CanMarkReturned, "add book copy"); err != nil {
		return model.BookInstance{}, err
	}
	return call(ctx, s.cfg.OperationTimeout, func(ctx context.Context) (model.BookInstance, error) {
		return s.repo.CreateInstance(ctx, bookID, imprint)
	})
}

// ListLoansForUser lists what the actor has on loan, soonest due first.
func (s *Service) ListLoansForUser(ctx context.Context, actor policy.Actor) ([]model.BookInstance, error) {
	if err := policy.Require(actor, policy.Authenticated, "list borrowed books"); err != nil {
		return nil, err
	}
	return call(ctx, s.cfg.OperationTimeout, func(ctx context.Context) ([]model.BookInstance, error) {
		return s.repo.ListLoans(ctx, actor.UserName)
	})
}

// ListAllLoans lists every loan, soonest due first.
func (s *Service) ListAllLoans(ctx context.Context, actor policy.Actor) ([]model.BookInstance, error) {
	if err := policy.Require(actor, policy.CanMarkReturned, "list all loans"); err != nil {
		return nil, err
	}
	return call(ctx, s.cfg.OperationTimeout, func(ctx context.Context) ([]model.BookInstance, error) {
		return s.repo.ListLoans(ctx, "")
	})
}

func (s *Service) ListOverdue(ctx context.Context, actor policy.Actor) ([]model.BookInstance, error) {
	if err := policy.Require(actor, policy.CanMarkReturned, "list overdue loans"); err != nil {
		return nil, err
	}
	return call(ctx, s.cfg.OperationTimeout, func(ctx context.Context) ([]model.BookInstance, error) {
		return s.repo.ListOverdue(ctx, s.today())
	})
}

// SweepOverdue publishes a loan.overdue event per overdue instance.
func (s *Service) SweepOverdue(ctx context.Context) (int, error) {
	overdue, err := s.ListOverdue(ctx, policy.System())
	if err != nil {
		return 0, err
	}
	for _, bi := range overdue {
		borrower := ""
		if bi.Borrower != nil {
			borrower = *bi.Borrower
		}
		s.publish(ctx, model.EventLoanOverdue, borrower, bi)
	}
	return len(overdue), nil
}

// ApplyLoanMessage applies a circulation-desk message from the loans topic.
func (s *Service) ApplyLoanMessage(ctx context.Context, msg model.LoanMessage) error {
	if err := s.validator.Validate(msg); err != nil {
		return errors.Wrap(err, "invalid loan message")
	}
	var err error
	switch msg.Action {
	case model.LoanCheckout:
		_, err = s.Checkout(ctx, policy.System(), msg.InstanceID, msg.Borrower, msg.DueBack)
	case model.LoanReturn:
		_, err = s.MarkReturned(ctx, policy.System(), msg.InstanceID)
	default:
		err = errors.Errorf("unknown loan action %q", msg.Action)
	}
	return err
}
