// Package dice exposes dice.v1 gRPC operations over the roll service.
package dice

import (
	"context"
	"errors"
	"strings"

	dicev1 "github.com/louisbranch/dicebox/api/gen/go/dice/v1"
	dicedomain "github.com/louisbranch/dicebox/internal/dice"
	"github.com/louisbranch/dicebox/internal/storage"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Roller abstracts the roll service use cases the transport needs.
type Roller interface {
	CreateRoll(ctx context.Context, requested []dicedomain.DieType) (storage.DiceRoll, error)
	GetRoll(ctx context.Context, rollID string) (storage.DiceRoll, error)
}

// Service implements dice.v1.DiceService.
type Service struct {
	dicev1.UnimplementedDiceServiceServer
	rolls Roller
}

// NewService creates a dice gRPC service backed by the roll service.
func NewService(rolls Roller) *Service {
	return &Service{rolls: rolls}
}

// RollDice rolls the requested dice and returns the persisted outcome.
func (s *Service) RollDice(ctx context.Context, in *dicev1.RollDiceRequest) (*dicev1.RollDiceResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "roll dice request is required")
	}
	if s == nil || s.rolls == nil {
		return nil, status.Error(codes.Internal, "roll service is not configured")
	}

	requested, err := dieTypesFromProto(in.GetDice())
	if err != nil {
		return nil, err
	}

	record, err := s.rolls.CreateRoll(ctx, requested)
	if err != nil {
		return nil, rollErrorToStatus("roll dice", err)
	}
	return &dicev1.RollDiceResponse{
		RollId:    record.ID,
		Results:   rolledDiceToProto(record.Results),
		CreatedAt: timestamppb.New(record.CreatedAt),
	}, nil
}

// GetDiceRoll returns a previously persisted roll by identifier.
func (s *Service) GetDiceRoll(ctx context.Context, in *dicev1.GetDiceRollRequest) (*dicev1.GetDiceRollResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get dice roll request is required")
	}
	if s == nil || s.rolls == nil {
		return nil, status.Error(codes.Internal, "roll service is not configured")
	}
	rollID := strings.TrimSpace(in.GetRollId())
	if rollID == "" {
		return nil, status.Error(codes.InvalidArgument, "roll id is required")
	}

	record, err := s.rolls.GetRoll(ctx, rollID)
	if err != nil {
		return nil, rollErrorToStatus("get dice roll", err)
	}
	return &dicev1.GetDiceRollResponse{
		RollId:    record.ID,
		Results:   rolledDiceToProto(record.Results),
		CreatedAt: timestamppb.New(record.CreatedAt),
	}, nil
}

// rollErrorToStatus maps the core error taxonomy to gRPC status codes.
func rollErrorToStatus(op string, err error) error {
	switch {
	case errors.Is(err, dicedomain.ErrNoDice):
		return status.Error(codes.InvalidArgument, "at least one die is required")
	case errors.Is(err, dicedomain.ErrUnknownDieType):
		return status.Error(codes.InvalidArgument, "unknown die type")
	case errors.Is(err, storage.ErrNotFound):
		return status.Error(codes.NotFound, "dice roll not found")
	case errors.Is(err, storage.ErrUnavailable):
		return status.Error(codes.Unavailable, "storage is unavailable, retry later")
	default:
		return status.Errorf(codes.Internal, "%s: %v", op, err)
	}
}
