/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the engine's state model from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - bakery/state.go: The state these types project
*/
package api

import (
	"github.com/warp/bakery-engine/bakery"
)

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// SessionDTO identifies a session in create/list responses.
type SessionDTO struct {
	ID  string `json:"id"`
	Day int    `json:"day"`
}

// ResourcesDTO is the coin/flour/customer block of a snapshot.
type ResourcesDTO struct {
	Coins     float64 `json:"coins"`
	Flour     int     `json:"flour"`
	MaxFlour  int     `json:"max_flour"`
	Savings   float64 `json:"savings"`
	Customers int     `json:"customers"`
	Happiness int     `json:"happiness"`
}

// SlotDTO is one in-flight bake.
type SlotDTO struct {
	ID       int     `json:"id"`
	RecipeID string  `json:"recipe_id"`
	Progress float64 `json:"progress"`
}

// RecipeDTO mirrors a catalog recipe with its unlock state.
type RecipeDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	FlourCost int    `json:"flour_cost"`
	Reward    int    `json:"reward"`
	BakeMs    int64  `json:"bake_ms"`
	Locked    bool   `json:"locked"`
	Desc      string `json:"desc"`
}

// UpgradeDTO mirrors a catalog upgrade with its ownership state.
type UpgradeDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Cost     int    `json:"cost"`
	Tier     int    `json:"tier"`
	Unlocked bool   `json:"unlocked"`
	Desc     string `json:"desc"`
}

// MissionDTO is one mission board row.
type MissionDTO struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	RewardText string `json:"reward_text"`
	Action     string `json:"action"`
	Auto       bool   `json:"auto"`
	Done       bool   `json:"done"`
}

// CreditDTO is the credit block of a snapshot.
type CreditDTO struct {
	Score         int      `json:"score"`
	DisplayScore  int      `json:"display_score"`
	Band          string   `json:"band"`
	ScoreHistory  []int    `json:"score_history"`
	CreditUsed    int      `json:"credit_used"`
	CreditLimit   int      `json:"credit_limit"`
	Utilization   int      `json:"utilization"`
	SupplierDebt  int      `json:"supplier_debt"`
	EmergencyFund float64  `json:"emergency_fund"`
	LoanBalance   int      `json:"loan_balance"`
	LoanRate      float64  `json:"loan_rate"`
	TotalInterest float64  `json:"total_interest"`
	Log           []string `json:"log"`
}

// NoticeDTO is the transient toast, when one is live.
type NoticeDTO struct {
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// EventDTO is the active daily-event banner, when one is live.
type EventDTO struct {
	ID       string `json:"id"`
	Icon     string `json:"icon"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// FlashDTO is the transient score-change callout, when one is live.
type FlashDTO struct {
	Delta  int    `json:"delta"`
	Reason string `json:"reason"`
}

// StateDTO is the full snapshot returned by GET /state.
type StateDTO struct {
	ID             string       `json:"id"`
	Day            int          `json:"day"`
	Resources      ResourcesDTO `json:"resources"`
	Slots          []SlotDTO    `json:"slots"`
	Recipes        []RecipeDTO  `json:"recipes"`
	Upgrades       []UpgradeDTO `json:"upgrades"`
	Missions       []MissionDTO `json:"missions"`
	Credit         CreditDTO    `json:"credit"`
	SourdoughLevel int          `json:"sourdough_level"`
	PassiveRate    float64      `json:"passive_rate"`
	ShopLevel      int          `json:"shop_level"`
	TotalEarned    float64      `json:"total_earned"`
	PassiveEarned  float64      `json:"passive_earned"`
	MissionsDone   int          `json:"missions_done"`
	RecipesOpen    int          `json:"recipes_open"`
	Stressed       bool         `json:"stressed"`
	PastryShelf    []string     `json:"pastry_shelf"`
	CoinHistory    []int        `json:"coin_history"`
	FlourHistory   []int        `json:"flour_history"`
	ActivityLog    []string     `json:"activity_log"`
	BakesToday     int          `json:"bakes_today"`
	Notice         *NoticeDTO   `json:"notice,omitempty"`
	Event          *EventDTO    `json:"event,omitempty"`
	Flash          *FlashDTO    `json:"flash,omitempty"`
}

// BandDTO is one row of the score band ladder.
type BandDTO struct {
	Min      int    `json:"min"`
	Label    string `json:"label"`
	OvenDesc string `json:"oven_desc"`
}

// CreditReportDTO is the GET /credit response: the credit block plus the
// static tables and the rate this score currently qualifies for.
type CreditReportDTO struct {
	Credit      CreditDTO `json:"credit"`
	Bands       []BandDTO `json:"bands"`
	OfferedRate float64   `json:"offered_rate"`
}

// ErrorResponse is the error body for all non-2xx responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// REQUEST TYPES
// =============================================================================

// BakeRequest starts a bake.
type BakeRequest struct {
	RecipeID string `json:"recipe_id"`
}

// FlourRequest buys a bulk flour tier (0-based index).
type FlourRequest struct {
	Tier int `json:"tier"`
}

// AmountRequest carries a single coin amount (invest, borrow, loan, fund).
type AmountRequest struct {
	Amount int `json:"amount"`
}

// PayRequest selects the supplier repayment policy: full, partial or skip.
type PayRequest struct {
	Mode string `json:"mode"`
}

// ImpulseRequest resolves the temptation prompt.
type ImpulseRequest struct {
	Resist bool `json:"resist"`
}

// =============================================================================
// MAPPING
// =============================================================================

func toStateDTO(id string, st bakery.State, passiveRate float64) StateDTO {
	dto := StateDTO{
		ID:  id,
		Day: st.Day,
		Resources: ResourcesDTO{
			Coins:     st.Resources.Coins.Float(),
			Flour:     st.Resources.Flour,
			MaxFlour:  st.Resources.MaxFlour,
			Savings:   st.Resources.Savings.Float(),
			Customers: st.Resources.Customers,
			Happiness: st.Resources.Happiness,
		},
		Slots:          make([]SlotDTO, 0, len(st.Slots)),
		Recipes:        make([]RecipeDTO, 0, len(st.Recipes)),
		Upgrades:       make([]UpgradeDTO, 0, len(st.Upgrades)),
		Missions:       make([]MissionDTO, 0, len(st.Missions)),
		Credit:         toCreditDTO(st),
		SourdoughLevel: st.SourdoughLevel,
		PassiveRate:    passiveRate,
		ShopLevel:      st.ShopLevel(),
		TotalEarned:    st.TotalEarned.Float(),
		PassiveEarned:  st.SourdoughEarned.Float(),
		MissionsDone:   st.MissionsDone(),
		RecipesOpen:    st.UnlockedRecipes(),
		Stressed:       st.Stressed(),
		PastryShelf:    st.PastryShelf,
		CoinHistory:    st.CoinHistory,
		FlourHistory:   st.FlourHistory,
		ActivityLog:    st.ActivityLog,
		BakesToday:     st.BakesToday,
	}

	for _, s := range st.Slots {
		dto.Slots = append(dto.Slots, SlotDTO{ID: s.ID, RecipeID: string(s.RecipeID), Progress: s.Progress})
	}
	for _, r := range st.Recipes {
		dto.Recipes = append(dto.Recipes, RecipeDTO{
			ID: string(r.ID), Name: r.Name, Icon: r.Icon,
			FlourCost: r.FlourCost, Reward: r.Reward,
			BakeMs: r.BaseTime.Milliseconds(), Locked: r.Locked, Desc: r.Desc,
		})
	}
	for _, u := range st.Upgrades {
		dto.Upgrades = append(dto.Upgrades, UpgradeDTO{
			ID: string(u.ID), Name: u.Name, Icon: u.Icon,
			Cost: u.Cost, Tier: u.Tier, Unlocked: u.Unlocked, Desc: u.Desc,
		})
	}
	for _, m := range st.Missions {
		dto.Missions = append(dto.Missions, MissionDTO{
			ID: string(m.ID), Text: m.Text, RewardText: m.RewardText,
			Action: string(m.Action), Auto: m.Mode == bakery.MissionAuto, Done: m.Done,
		})
	}

	if st.Notice != nil {
		dto.Notice = &NoticeDTO{Message: st.Notice.Message, Severity: string(st.Notice.Severity)}
	}
	if st.Event != nil {
		dto.Event = &EventDTO{
			ID: string(st.Event.ID), Icon: st.Event.Icon,
			Message: st.Event.Message, Severity: string(st.Event.Severity),
		}
	}
	if st.Flash != nil {
		dto.Flash = &FlashDTO{Delta: st.Flash.Delta, Reason: st.Flash.Reason}
	}
	return dto
}

func toCreditDTO(st bakery.State) CreditDTO {
	return CreditDTO{
		Score:         st.Credit.Score,
		DisplayScore:  st.Credit.DisplayScore,
		Band:          st.Band().Label,
		ScoreHistory:  st.Credit.ScoreHistory,
		CreditUsed:    st.Credit.CreditUsed,
		CreditLimit:   bakery.CreditLimit,
		Utilization:   st.UtilizationPercent(),
		SupplierDebt:  st.Credit.SupplierDebt,
		EmergencyFund: st.Credit.EmergencyFund.Float(),
		LoanBalance:   st.Credit.LoanBalance,
		LoanRate:      st.Credit.LoanRate,
		TotalInterest: st.Credit.TotalInterest.Float(),
		Log:           st.Credit.Log,
	}
}

func toBandDTOs(bands []bakery.CreditBand) []BandDTO {
	out := make([]BandDTO, 0, len(bands))
	for _, b := range bands {
		out = append(out, BandDTO{Min: b.Min, Label: b.Label, OvenDesc: b.OvenDesc})
	}
	return out
}
