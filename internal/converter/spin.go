package converter

import (
	"time"

	dto "staro_backend/internal/api/dto/spin"
	"staro_backend/internal/model"
)

func ToSpinRequest(req dto.SpinRequest) model.SpinRequest {
	return model.SpinRequest{
		UserID: req.UserID,
		Type:   req.Type,
	}
}

func ToSpinResponse(res model.SpinResult) dto.SpinResponse {
	if !res.OK {
		return dto.SpinResponse{
			OK:      false,
			Message: res.Message,
		}
	}

	awarded := toAwarded(res.Awarded)
	return dto.SpinResponse{
		OK:      true,
		Outcome: res.Outcome,
		Awarded: &awarded,
	}
}

func ToHistoryResponse(entries []model.SpinHistoryEntry) dto.HistoryResponse {
	history := make([]dto.HistoryEntry, len(entries))
	for i, e := range entries {
		history[i] = dto.HistoryEntry{
			Type:      e.Type,
			Outcome:   e.Outcome,
			Awarded:   toAwarded(e.Awarded),
			CreatedAt: e.CreatedAt.Format(time.RFC3339),
		}
	}
	return dto.HistoryResponse{History: history}
}

func toAwarded(a model.Awarded) dto.Awarded {
	awarded := dto.Awarded{
		Stars:  a.Stars,
		Tokens: a.Tokens,
	}
	if a.NFT != nil {
		awarded.NFT = &dto.NFT{
			ID:   a.NFT.ID,
			Name: a.NFT.Name,
			Tier: a.NFT.Tier,
		}
	}
	return awarded
}
