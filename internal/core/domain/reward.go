package domain

import "math"

// ---- Offline reward ----

const (
	MaxOfflineMinutes       int64 = 24 * 60
	X2ClaimCost             int64 = 29
	MaxOfflineFreeCash      int64 = 40
	MinutesPerOfflineCash   int64 = 30
	offlineFullRateMinutes  int64 = 120
	offlineHalfRateMinutes  int64 = 480
	offlineFullDecayPercent int64 = 100
	offlineMidDecayPercent  int64 = 60
	offlineLowDecayPercent  int64 = 25
)

// ClaimType selects how an offline reward is collected.
type ClaimType string

const (
	ClaimFree ClaimType = "free"
	ClaimX2   ClaimType = "x2"
)

// Multiplier applies to gold only. Any value other than x2 claims at 1x.
func (c ClaimType) Multiplier() int64 {
	if c == ClaimX2 {
		return 2
	}
	return 1
}

// Cost is the paid currency charged for the claim.
func (c ClaimType) Cost() int64 {
	if c == ClaimX2 {
		return X2ClaimCost
	}
	return 0
}

// OfflineMinutes returns whole minutes between lastSeenMs and nowMs,
// clamped to [0, MaxOfflineMinutes].
func OfflineMinutes(nowMs, lastSeenMs int64) int64 {
	// checked before subtracting: a far-past lastSeenMs would overflow
	if lastSeenMs <= nowMs-MaxOfflineMinutes*60000 {
		return MaxOfflineMinutes
	}
	minutes := (nowMs - lastSeenMs) / 60000
	return min(max(minutes, 0), MaxOfflineMinutes)
}

// OfflineDecayPercent is the idle-income factor for an absence, in percent.
func OfflineDecayPercent(minutes int64) int64 {
	switch {
	case minutes <= offlineFullRateMinutes:
		return offlineFullDecayPercent
	case minutes <= offlineHalfRateMinutes:
		return offlineMidDecayPercent
	default:
		return offlineLowDecayPercent
	}
}

// OfflineQuote explains an offline reward before it is applied.
type OfflineQuote struct {
	ClaimType      ClaimType
	OfflineMinutes int64
	DecayPercent   int64
	Multiplier     int64
	Cost           int64
	Gold           int64
	FreeCash       int64
}

// Decay returns the decay factor as a fraction (1.0, 0.6, 0.25).
func (q OfflineQuote) Decay() float64 {
	return float64(q.DecayPercent) / 100
}

// Grant is the wallet delta for the quote, including the x2 charge.
func (q OfflineQuote) Grant() Grant {
	return Grant{Gold: q.Gold, FreeCash: q.FreeCash, PaidCash: -q.Cost}
}

// QuoteOffline computes the reward for offlineMinutes of absence at baseRate.
// Gold is floor(rate * minutes * decay * multiplier), evaluated in integers
// and saturating rather than wrapping.
// Free cash is one unit per 30 minutes, capped at 40 and never multiplied.
func QuoteOffline(baseRate, offlineMinutes int64, claim ClaimType) OfflineQuote {
	decay := OfflineDecayPercent(offlineMinutes)
	mult := claim.Multiplier()
	return OfflineQuote{
		ClaimType:      claim,
		OfflineMinutes: offlineMinutes,
		DecayPercent:   decay,
		Multiplier:     mult,
		Cost:           claim.Cost(),
		Gold:           mulSat(mulSat(mulSat(baseRate, offlineMinutes), decay), mult) / 100,
		FreeCash:       min(MaxOfflineFreeCash, offlineMinutes/MinutesPerOfflineCash),
	}
}

// ---- Session-finish rate re-estimation ----

const (
	MinBaseRatePerMinute int64 = 80
	DefaultPlayedMs      int64 = 60000
	rateKeepWeight             = 0.8
	rateSampleWeight           = 0.2
)

// BlendRate folds one session's earnings into the smoothed idle rate.
// Sessions shorter than a minute count as one minute. The result is capped
// at MaxSafeInteger.
func BlendRate(current, runGold, playedMs int64) int64 {
	playedMin := math.Max(1, float64(playedMs)/60000)
	perMinute := float64(max(runGold, 0)) / playedMin
	blended := math.Round(float64(current)*rateKeepWeight + perMinute*rateSampleWeight)
	return max(MinBaseRatePerMinute, int64(math.Min(blended, float64(MaxSafeInteger))))
}

// ---- Purchase grants ----

// GrantKind is the grant table entry a SKU resolves to.
type GrantKind int

const (
	GrantGoldBundle GrantKind = iota // default for every unlisted SKU
	GrantStarterPack
	GrantVIPMonth
)

// GrantKindFor resolves a SKU id. The lookup is total.
func GrantKindFor(skuID string) GrantKind {
	switch skuID {
	case "starter_pack":
		return GrantStarterPack
	case "vip_month":
		return GrantVIPMonth
	default:
		return GrantGoldBundle
	}
}

// Grant returns the wallet delta for the kind.
func (k GrantKind) Grant() Grant {
	switch k {
	case GrantStarterPack:
		return Grant{FreeCash: 500}
	case GrantVIPMonth:
		return Grant{FreeCash: 120}
	default:
		return Grant{Gold: 5000}
	}
}

// GrantForSKU is GrantKindFor(skuID).Grant().
func GrantForSKU(skuID string) Grant {
	return GrantKindFor(skuID).Grant()
}

// ---- Missions ----

// StatMetric names the counter a mission measures progress against.
type StatMetric int

const (
	MetricServedTotal StatMetric = iota
	MetricBestCombo
	MetricInvitedFriends
)

// Value reads the metric from s.
func (m StatMetric) Value(s Stats) int64 {
	switch m {
	case MetricServedTotal:
		return s.ServedTotal
	case MetricBestCombo:
		return s.BestCombo
	case MetricInvitedFriends:
		return s.InvitedFriends
	default:
		return 0
	}
}

// Mission is a daily mission definition.
type Mission struct {
	ID     string
	Title  string
	Goal   int64
	Metric StatMetric
	Reward Grant
}

// Progress is the metric value capped at the goal.
func (m Mission) Progress(s Stats) int64 {
	return min(m.Goal, m.Metric.Value(s))
}

// Complete reports whether s meets the goal.
func (m Mission) Complete(s Stats) bool {
	return m.Metric.Value(s) >= m.Goal
}

var missionTable = []Mission{
	{ID: "m1", Title: "Serve 80 street snacks in total", Goal: 80, Metric: MetricServedTotal, Reward: Grant{Gold: 1200}},
	{ID: "m2", Title: "Reach a 20 combo", Goal: 20, Metric: MetricBestCombo, Reward: Grant{FreeCash: 4}},
	{ID: "m3", Title: "Invite 1 friend", Goal: 1, Metric: MetricInvitedFriends, Reward: Grant{FreeCash: 8}},
}

// Missions returns the daily mission table in display order.
func Missions() []Mission {
	out := make([]Mission, len(missionTable))
	copy(out, missionTable)
	return out
}

// LookupMission finds a mission by id. Unknown ids are not an error here;
// callers decide.
func LookupMission(id string) (Mission, bool) {
	for _, m := range missionTable {
		if m.ID == id {
			return m, true
		}
	}
	return Mission{}, false
}

// ---- Battle pass ----

const (
	PassTierFree    = "free"
	PassTierPremium = "premium"
)

// PassReward depends on tier alone. Unknown tiers pay the free reward.
func PassReward(tier string) Grant {
	if tier == PassTierPremium {
		return Grant{Gold: 5000, FreeCash: 10}
	}
	return Grant{Gold: 1800, FreeCash: 1}
}
