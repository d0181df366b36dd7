package spin

type SpinRequest struct {
	UserID string `json:"userId"` // ID пользователя
	Type   string `json:"type"`   // "free" или "paid"
}

type SpinResponse struct {
	OK      bool     `json:"ok"`                // false - бизнес-отказ, см. message
	Message string   `json:"message,omitempty"` // Причина отказа
	Outcome string   `json:"outcome,omitempty"` // Человекочитаемая метка исхода
	Awarded *Awarded `json:"awarded,omitempty"` // Начисленное за спин
}

type Awarded struct {
	Stars  int  `json:"stars"`  // Начислено звезд
	Tokens int  `json:"tokens"` // Начислено токенов
	NFT    *NFT `json:"nft"`    // Созданный NFT или null
}

type NFT struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Tier string `json:"tier"` // common / rare / legendary
}

type HistoryResponse struct {
	History []HistoryEntry `json:"history"`
}

type HistoryEntry struct {
	Type      string  `json:"type"`       // "free" или "paid"
	Outcome   string  `json:"outcome"`    // Метка исхода
	Awarded   Awarded `json:"awarded"`    // Начисленное
	CreatedAt string  `json:"created_at"` // RFC 3339
}
