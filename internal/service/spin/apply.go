package spin

import (
	"context"
	"fmt"
	"log"
	"strings"

	"staro_backend/internal/model"
)

// Границы случайных величин наград.
// span задает полуинтервал [min, min+span)
const (
	freeStarMin  = 20
	freeStarSpan = 31 // 20..50

	freeTokenMin  = 10000
	freeTokenSpan = 90001 // 10000..100000

	paidStarMin  = 50
	paidStarSpan = 951 // 50..1000

	commonFallbackStarMin  = 50
	commonFallbackStarSpan = 451 // 50..500

	rareFallbackTokenMin  = 200000
	rareFallbackTokenSpan = 300001 // 200000..500000

	legendaryFallbackTokenMin  = 1000000
	legendaryFallbackTokenSpan = 2000001 // 1000000..3000000

	// Косметический суффикс имени NFT, уникальность не гарантирует
	nftNameSuffixBound = 10000
)

// applyFreeBand применяет полосу бесплатной таблицы.
// Каждая полоса дает ровно один исход: метку и начисленное
func (s *serv) applyFreeBand(ctx context.Context, userID string, band string) (string, model.Awarded, error) {
	var awarded model.Awarded

	switch band {
	case bandStar:
		amount := freeStarMin + s.rnd.IntN(freeStarSpan)
		if err := s.userRepo.AddStars(ctx, userID, amount); err != nil {
			return "", awarded, err
		}
		awarded.Stars = amount
		return fmt.Sprintf("Free Star +%d", amount), awarded, nil

	case bandToken:
		amount := freeTokenMin + s.rnd.IntN(freeTokenSpan)
		if err := s.userRepo.AddTokens(ctx, userID, amount); err != nil {
			return "", awarded, err
		}
		awarded.Tokens = amount
		return fmt.Sprintf("Free Token +%d", amount), awarded, nil

	case bandCommon:
		nft, err := s.mintNFT(ctx, userID, model.TierCommon)
		if err != nil {
			// Фолбэк бесплатного common - "без приза", спин все равно состоялся
			log.Printf("free common mint failed for %s: %v", userID, err)
			return "Free: no prize", awarded, nil
		}
		awarded.NFT = nft
		return "Free Common NFT " + nft.Name, awarded, nil

	default:
		return "Free: Nothing", awarded, nil
	}
}

// applyPaidBand применяет полосу платной таблицы.
// При неудаче минта NFT начисляется детерминированный фолбэк,
// исход фиксируется и спин считается состоявшимся
func (s *serv) applyPaidBand(ctx context.Context, userID string, band string) (string, model.Awarded, error) {
	var awarded model.Awarded

	switch band {
	case bandCommon:
		nft, err := s.mintNFT(ctx, userID, model.TierCommon)
		if err != nil {
			log.Printf("common mint failed for %s: %v", userID, err)
			amount := commonFallbackStarMin + s.rnd.IntN(commonFallbackStarSpan)
			if err := s.userRepo.AddStars(ctx, userID, amount); err != nil {
				return "", awarded, err
			}
			awarded.Stars = amount
			return "Common: fallback stars", awarded, nil
		}
		awarded.NFT = nft
		return "Common NFT " + nft.Name, awarded, nil

	case bandMedium:
		nft, err := s.mintNFT(ctx, userID, model.TierRare)
		if err != nil {
			log.Printf("rare mint failed for %s: %v", userID, err)
			amount := rareFallbackTokenMin + s.rnd.IntN(rareFallbackTokenSpan)
			if err := s.userRepo.AddTokens(ctx, userID, amount); err != nil {
				return "", awarded, err
			}
			awarded.Tokens = amount
			return "Rare: fallback tokens", awarded, nil
		}
		awarded.NFT = nft
		return "Rare NFT " + nft.Name, awarded, nil

	case bandHigh:
		nft, err := s.mintNFT(ctx, userID, model.TierLegendary)
		if err != nil {
			log.Printf("legendary mint failed for %s: %v", userID, err)
			amount := legendaryFallbackTokenMin + s.rnd.IntN(legendaryFallbackTokenSpan)
			if err := s.userRepo.AddTokens(ctx, userID, amount); err != nil {
				return "", awarded, err
			}
			awarded.Tokens = amount
			return "High: fallback tokens", awarded, nil
		}
		awarded.NFT = nft
		return "Legendary NFT " + nft.Name, awarded, nil

	default:
		// Гарантированная полоса звезд - хвост платной таблицы
		amount := paidStarMin + s.rnd.IntN(paidStarSpan)
		if err := s.userRepo.AddStars(ctx, userID, amount); err != nil {
			return "", awarded, err
		}
		awarded.Stars = amount
		return fmt.Sprintf("Star +%d", amount), awarded, nil
	}
}

// mintNFT создает NFT указанного тира с владельцем userID
func (s *serv) mintNFT(ctx context.Context, userID string, tier string) (*model.NFT, error) {
	nft := &model.NFT{
		Name:  fmt.Sprintf("%s Pepe #%d", strings.ToUpper(tier), s.rnd.IntN(nftNameSuffixBound)),
		Tier:  tier,
		Owner: userID,
	}

	id, err := s.nftRepo.CreateNFT(ctx, nft)
	if err != nil {
		return nil, err
	}

	nft.ID = id
	return nft, nil
}
