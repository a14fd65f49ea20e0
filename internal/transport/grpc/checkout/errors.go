package checkout

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/domain"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/usecases/handle_scan"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/committer"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/task"
)

// mapDomainErrorToGRPC converts domain errors to gRPC status codes.
func mapDomainErrorToGRPC(err error) error {
	if err == nil {
		return nil
	}

	switch {
	// Not found
	case errors.Is(err, domain.ErrProductNotFound):
		return status.Error(codes.NotFound, "product not found")
	case errors.Is(err, domain.ErrUnknownBill):
		return status.Error(codes.NotFound, "unknown bill")
	case errors.Is(err, task.ErrTaskNotFound):
		return status.Error(codes.NotFound, "task not found")

	case errors.Is(err, domain.ErrDuplicateID):
		return status.Error(codes.AlreadyExists, "product id already exists")
	case errors.Is(err, domain.ErrDuplicateStaff):
		return status.Error(codes.AlreadyExists, "staff member already on the roster")

	case errors.Is(err, domain.ErrUnknownVerifier):
		return status.Error(codes.PermissionDenied, "verifier is not on the staff roster")

	// State that does not allow the operation; the message carries details
	case errors.Is(err, domain.ErrOutOfStock),
		errors.Is(err, domain.ErrAlreadyVerified):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, domain.ErrNotInCart):
		return status.Error(codes.FailedPrecondition, "product is not in the cart")
	case errors.Is(err, domain.ErrEmptyCart):
		return status.Error(codes.FailedPrecondition, "cart is empty")
	case errors.Is(err, domain.ErrPaymentDeclined):
		return status.Error(codes.FailedPrecondition, "payment declined")
	case errors.Is(err, task.ErrTaskNotCancellable):
		return status.Error(codes.FailedPrecondition, "task already finished")

	case errors.Is(err, domain.ErrInvalidScanPayload):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrEmptyProductID),
		errors.Is(err, domain.ErrEmptyName),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidDiscount),
		errors.Is(err, domain.ErrNegativeStock),
		errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, domain.ErrMoneyOverflow),
		errors.Is(err, domain.ErrEmptySession),
		errors.Is(err, domain.ErrEmptyCustomer),
		errors.Is(err, domain.ErrEmptyVerifier),
		errors.Is(err, domain.ErrInvalidTaxRate),
		errors.Is(err, domain.ErrEmptyStaffName),
		errors.Is(err, domain.ErrInvalidStaffRole),
		errors.Is(err, handle_scan.ErrNothingScanned):
		return status.Error(codes.InvalidArgument, rootMessage(err))

	// A write raced another one on the same row
	case errors.Is(err, committer.ErrVersionConflict),
		errors.Is(err, committer.ErrDuplicateKey),
		errors.Is(err, committer.ErrRowMissing):
		return status.Error(codes.Aborted, "concurrent modification, retry")

	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "operation cancelled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "operation timed out")

	default:
		// Unknown error - return Internal
		return status.Error(codes.Internal, "internal server error")
	}
}

// rootMessage strips use case wrapping so clients see the domain message.
func rootMessage(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}
