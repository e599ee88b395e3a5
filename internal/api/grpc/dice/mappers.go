package dice

import (
	dicev1 "github.com/louisbranch/dicebox/api/gen/go/dice/v1"
	dicedomain "github.com/louisbranch/dicebox/internal/dice"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var protoToDomainDie = map[dicev1.DieType]dicedomain.DieType{
	dicev1.DieType_DIE_TYPE_D3:   dicedomain.D3,
	dicev1.DieType_DIE_TYPE_D4:   dicedomain.D4,
	dicev1.DieType_DIE_TYPE_D6:   dicedomain.D6,
	dicev1.DieType_DIE_TYPE_D8:   dicedomain.D8,
	dicev1.DieType_DIE_TYPE_D10:  dicedomain.D10,
	dicev1.DieType_DIE_TYPE_D12:  dicedomain.D12,
	dicev1.DieType_DIE_TYPE_D20:  dicedomain.D20,
	dicev1.DieType_DIE_TYPE_D100: dicedomain.D100,
}

var domainToProtoDie = map[dicedomain.DieType]dicev1.DieType{
	dicedomain.D3:   dicev1.DieType_DIE_TYPE_D3,
	dicedomain.D4:   dicev1.DieType_DIE_TYPE_D4,
	dicedomain.D6:   dicev1.DieType_DIE_TYPE_D6,
	dicedomain.D8:   dicev1.DieType_DIE_TYPE_D8,
	dicedomain.D10:  dicev1.DieType_DIE_TYPE_D10,
	dicedomain.D12:  dicev1.DieType_DIE_TYPE_D12,
	dicedomain.D20:  dicev1.DieType_DIE_TYPE_D20,
	dicedomain.D100: dicev1.DieType_DIE_TYPE_D100,
}

// dieTypesFromProto converts request dice, rejecting unspecified or
// unknown enum values before any randomness is consumed.
func dieTypesFromProto(in []dicev1.DieType) ([]dicedomain.DieType, error) {
	if len(in) == 0 {
		return nil, status.Error(codes.InvalidArgument, "at least one die is required")
	}
	out := make([]dicedomain.DieType, 0, len(in))
	for _, die := range in {
		domain, ok := protoToDomainDie[die]
		if !ok {
			return nil, status.Errorf(codes.InvalidArgument, "unknown die type %d", die)
		}
		out = append(out, domain)
	}
	return out, nil
}

func rolledDiceToProto(in []dicedomain.RolledDie) []*dicev1.RolledDie {
	out := make([]*dicev1.RolledDie, 0, len(in))
	for _, result := range in {
		out = append(out, &dicev1.RolledDie{
			Die:   domainToProtoDie[result.Die],
			Value: int32(result.Value),
		})
	}
	return out
}
