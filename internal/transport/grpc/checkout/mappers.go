package checkout

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/contracts"
	"github.com/light-bringer/selfcheckout-service/internal/app/checkout/domain"
	"github.com/light-bringer/selfcheckout-service/internal/models/m_outbox"
	"github.com/light-bringer/selfcheckout-service/internal/pkg/task"
	pb "github.com/light-bringer/selfcheckout-service/proto/checkout/v1"
)

// parseMoney converts a decimal string field to domain Money.
func parseMoney(field, s string) (*domain.Money, error) {
	m, err := domain.ParseMoney(s)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid %s", field)
	}
	return m, nil
}

// parseOptionalMoney is parseMoney for optional fields; nil stays nil.
func parseOptionalMoney(field string, s *string) (*domain.Money, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	return parseMoney(field, *s)
}

// dtoToProtoProduct converts a ProductDTO to the wire Product.
func dtoToProtoProduct(dto *contracts.ProductDTO) *pb.Product {
	return &pb.Product{
		ProductID:       dto.ProductID,
		Name:            dto.Name,
		Category:        dto.Category,
		ListPrice:       dto.ListPrice,
		DiscountedPrice: dto.DiscountedPrice,
		DiscountPercent: dto.DiscountPercent,
		EffectivePrice:  dto.EffectivePrice,
		Stock:           dto.Stock,
		AddedOn:         dto.AddedOn,
		UpdatedAt:       dto.UpdatedAt,
	}
}

func dtosToProtoProducts(dtos []*contracts.ProductDTO) []*pb.Product {
	out := make([]*pb.Product, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, dtoToProtoProduct(dto))
	}
	return out
}

func dtoToProtoCart(dto *contracts.CartDTO) *pb.Cart {
	c := &pb.Cart{
		SessionID: dto.SessionID,
		Items:     make([]*pb.CartItem, 0, len(dto.Items)),
		Units:     dto.Units,
		Subtotal:  dto.Subtotal,
		Tax:       dto.Tax,
		Total:     dto.Total,
	}
	for _, item := range dto.Items {
		c.Items = append(c.Items, &pb.CartItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal,
		})
	}
	return c
}

// dtoToProtoBill converts a BillDTO to the wire Bill.
func dtoToProtoBill(dto *contracts.BillDTO) *pb.Bill {
	b := &pb.Bill{
		BillID:             dto.BillID,
		CustomerID:         dto.CustomerID,
		CustomerName:       dto.CustomerName,
		Lines:              make([]*pb.BillLine, 0, len(dto.Lines)),
		Subtotal:           dto.Subtotal,
		Tax:                dto.Tax,
		Total:              dto.Total,
		TaxRate:            dto.TaxRate,
		PaymentStatus:      dto.PaymentStatus,
		VerificationStatus: dto.VerificationStatus,
		VerifiedBy:         dto.VerifiedBy,
		VerifiedAt:         dto.VerifiedAt,
		CreatedAt:          dto.CreatedAt,
	}
	for _, l := range dto.Lines {
		b.Lines = append(b.Lines, &pb.BillLine{
			ProductID: l.ProductID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			LineTotal: l.LineTotal,
		})
	}
	return b
}

func billToProto(bill *domain.Bill) *pb.Bill {
	return dtoToProtoBill(contracts.NewBillDTO(bill))
}

func dtoToProtoVerification(dto *contracts.VerificationDTO) *pb.Verification {
	return &pb.Verification{
		RecordID:     dto.RecordID,
		BillID:       dto.BillID,
		CustomerName: dto.CustomerName,
		BillTotal:    dto.BillTotal,
		VerifiedBy:   dto.VerifiedBy,
		VerifiedAt:   dto.VerifiedAt,
	}
}

func recordToProto(rec *domain.VerificationRecord) *pb.Verification {
	return dtoToProtoVerification(contracts.NewVerificationDTO(rec))
}

func dtoToProtoStaff(dto *contracts.StaffDTO) *pb.Staff {
	return &pb.Staff{
		StaffID: dto.StaffID,
		Name:    dto.Name,
		Role:    dto.Role,
		Phone:   dto.Phone,
		Email:   dto.Email,
		AddedOn: dto.AddedOn,
	}
}

func staffToProto(m *domain.StaffMember) *pb.Staff {
	return &pb.Staff{
		StaffID: m.ID(),
		Name:    m.Name(),
		Role:    string(m.Role()),
		Phone:   m.Phone(),
		Email:   m.Email(),
		AddedOn: m.AddedOn(),
	}
}

// snapshotToProtoTask converts a task snapshot. A completed checkout task
// carries its bill.
func snapshotToProtoTask(snap task.Snapshot) *pb.Task {
	t := &pb.Task{
		TaskID:      snap.ID,
		Kind:        snap.Kind,
		Status:      string(snap.Status),
		CurrentStep: int32(snap.Progress.CurrentStep),
		TotalSteps:  int32(snap.Progress.TotalSteps),
		StepName:    snap.Progress.StepName,
		Percentage:  snap.Progress.Percentage,
		CreatedAt:   snap.CreatedAt,
		CompletedAt: snap.CompletedAt,
	}
	if snap.Err != nil {
		t.Error = status.Convert(mapDomainErrorToGRPC(snap.Err)).Message()
	}
	if bill, ok := snap.Result.(*domain.Bill); ok {
		t.Bill = billToProto(bill)
	}
	return t
}

func outboxToProtoEvent(e *m_outbox.Data) *pb.Event {
	return &pb.Event{
		EventID:     e.EventID,
		EventType:   e.EventType,
		AggregateID: e.AggregateID,
		Payload:     e.Payload,
		Status:      e.Status,
		CreatedAt:   e.CreatedAt,
	}
}
