package checkout

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/light-bringer/selfcheckout-service/proto/checkout/v1"
)

func required(field, value string) error {
	if value == "" {
		return status.Errorf(codes.InvalidArgument, "%s is required", field)
	}
	return nil
}

// validateProductRecord validates the fields shared by add and update.
func validateProductRecord(name, category, listPrice string) error {
	if err := required("name", name); err != nil {
		return err
	}
	if err := required("category", category); err != nil {
		return err
	}
	return required("list_price", listPrice)
}

// validateAddProductRequest validates the AddProduct request.
func validateAddProductRequest(req *pb.AddProductRequest) error {
	return validateProductRecord(req.Name, req.Category, req.ListPrice)
}

// validateUpdateProductRequest validates the UpdateProduct request.
func validateUpdateProductRequest(req *pb.UpdateProductRequest) error {
	if err := required("product_id", req.ProductID); err != nil {
		return err
	}
	return validateProductRecord(req.Name, req.Category, req.ListPrice)
}

// validateCartRequest validates the session/product pair of cart calls.
func validateCartRequest(sessionID, productID string) error {
	if err := required("session_id", sessionID); err != nil {
		return err
	}
	return required("product_id", productID)
}

// validateCheckoutRequest validates Checkout and StartCheckout.
func validateCheckoutRequest(req *pb.CheckoutRequest) error {
	if err := required("session_id", req.SessionID); err != nil {
		return err
	}
	if err := required("customer_id", req.CustomerID); err != nil {
		return err
	}
	return required("customer_name", req.CustomerName)
}

// validateVerifyBillRequest validates the VerifyBill request.
func validateVerifyBillRequest(req *pb.VerifyBillRequest) error {
	if err := required("bill_id", req.BillID); err != nil {
		return err
	}
	return required("verifier", req.Verifier)
}

// validateAddStaffRequest validates the AddStaff request.
func validateAddStaffRequest(req *pb.AddStaffRequest) error {
	if err := required("name", req.Name); err != nil {
		return err
	}
	return required("role", req.Role)
}
