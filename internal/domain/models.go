package domain

// Role is the fixed set of hero roles. Unknown values never survive
// normalization; they are defaulted before a Hero record is produced.
type Role string

const (
	RoleVanguard   Role = "Vanguard"
	RoleDuelist    Role = "Duelist"
	RoleStrategist Role = "Strategist"
)

// Roles lists the role buckets in display order.
var Roles = []Role{RoleVanguard, RoleDuelist, RoleStrategist}

func (r Role) Valid() bool {
	switch r {
	case RoleVanguard, RoleDuelist, RoleStrategist:
		return true
	}
	return false
}

type AttackType string

const (
	AttackHitscan          AttackType = "Hitscan Heroes"
	AttackMelee            AttackType = "Melee Heroes"
	AttackProjectile       AttackType = "Projectile"
	AttackProjectileHeroes AttackType = "Projectile Heroes"
)

func (a AttackType) Valid() bool {
	switch a {
	case AttackHitscan, AttackMelee, AttackProjectile, AttackProjectileHeroes:
		return true
	}
	return false
}

type AbilityType string

const (
	AbilityMovement AbilityType = "Movement"
	AbilityNormal   AbilityType = "Normal"
	AbilityPassive  AbilityType = "Passive"
	AbilityUltimate AbilityType = "Ultimate"
	AbilityWeapon   AbilityType = "Weapon"
)

func (t AbilityType) Valid() bool {
	switch t {
	case AbilityMovement, AbilityNormal, AbilityPassive, AbilityUltimate, AbilityWeapon:
		return true
	}
	return false
}

type CostumeQuality string

const (
	QualityBlue      CostumeQuality = "BLUE"
	QualityNoQuality CostumeQuality = "NO_QUALITY"
	QualityOrange    CostumeQuality = "ORANGE"
	QualityPurple    CostumeQuality = "PURPLE"
)

func (q CostumeQuality) Valid() bool {
	switch q {
	case QualityBlue, QualityNoQuality, QualityOrange, QualityPurple:
		return true
	}
	return false
}

// MovementSpeed is the small set of literal speed strings the upstream
// API emits for transformations. The inconsistent spacing is theirs.
type MovementSpeed string

var movementSpeeds = map[MovementSpeed]struct{}{
	"6 m/s":   {},
	"6.5 m/s": {},
	"6m/s":    {},
	"7m/s":    {},
}

func (m MovementSpeed) Valid() bool {
	_, ok := movementSpeeds[m]
	return ok
}

// Hero is the normalized hero record. Constructed fresh on every
// fetch+normalize cycle and immutable afterwards.
type Hero struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	RealName        string           `json:"real_name"`
	ImageURL        string           `json:"imageUrl"`
	Icon            string           `json:"icon,omitempty"`
	Role            Role             `json:"role"`
	AttackType      AttackType       `json:"attack_type"`
	Team            []string         `json:"team"`
	Difficulty      string           `json:"difficulty"`
	Bio             string           `json:"bio"`
	Lore            string           `json:"lore"`
	Transformations []Transformation `json:"transformations"`
	Costumes        []Costume        `json:"costumes"`
	Abilities       []Ability        `json:"abilities"`
}

type Ability struct {
	ID               int64             `json:"id"`
	Icon             string            `json:"icon"`
	Name             string            `json:"name,omitempty"`
	Type             AbilityType       `json:"type"`
	IsCollab         bool              `json:"isCollab"`
	Description      string            `json:"description,omitempty"`
	AdditionalFields map[string]string `json:"additional_fields,omitempty"`
	TransformationID string            `json:"transformation_id"`
}

type Costume struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Icon        *string        `json:"icon"`
	Quality     CostumeQuality `json:"quality"`
	Description string         `json:"description"`
	Appearance  string         `json:"appearance"`
}

type Transformation struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Icon          string         `json:"icon"`
	Health        *string        `json:"health"`
	MovementSpeed *MovementSpeed `json:"movement_speed"`
}

type GameMap struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	FullName        string   `json:"full_name"`
	Location        string   `json:"location"`
	Description     string   `json:"description"`
	GameMode        string   `json:"game_mode"`
	IsCompetitive   bool     `json:"is_competitive"`
	SubMapID        int64    `json:"sub_map_id"`
	SubMapName      *string  `json:"sub_map_name"`
	SubMapThumbnail *string  `json:"sub_map_thumbnail"`
	Images          []string `json:"images"`
	Video           *string  `json:"video"`
}

// WinScore is the nested score/is_win pair under a participant record.
type WinScore struct {
	Score float64 `json:"score"`
	IsWin bool    `json:"is_win"`
}

// The standalone v2 match-history shape and the match-history array
// embedded in player-stats payloads differ in nesting and field names
// (match_player vs. player_performance). They are kept as distinct
// types on purpose; do not unify them.

type MatchHistory struct {
	Items      []MatchHistoryItem `json:"match_history"`
	Pagination Pagination         `json:"pagination"`
}

type Pagination struct {
	Page         int64 `json:"page"`
	Limit        int64 `json:"limit"`
	TotalMatches int64 `json:"total_matches"`
	TotalPages   int64 `json:"total_pages"`
	HasMore      bool  `json:"has_more"`
}

type MatchHistoryItem struct {
	MatchMapID        int64              `json:"match_map_id"`
	MapThumbnail      string             `json:"map_thumbnail"`
	MatchPlayDuration float64            `json:"match_play_duration"`
	MatchSeason       string             `json:"match_season"`
	MatchUID          string             `json:"match_uid"`
	MatchWinnerSide   int64              `json:"match_winner_side"`
	MVPUID            int64              `json:"mvp_uid"`
	SVPUID            int64              `json:"svp_uid"`
	ScoreInfo         map[string]float64 `json:"score_info"`
	MatchTimeStamp    int64              `json:"match_time_stamp"`
	PlayModeID        int64              `json:"play_mode_id"`
	GameModeID        int64              `json:"game_mode_id"`
	MatchPlayer       MatchPlayer        `json:"match_player"`
}

type MatchPlayer struct {
	Kills        int        `json:"kills"`
	Deaths       int        `json:"deaths"`
	Assists      int        `json:"assists"`
	IsWin        WinScore   `json:"is_win"`
	Disconnected bool       `json:"disconnected"`
	PlayerUID    int64      `json:"player_uid"`
	Camp         *int64     `json:"camp"`
	ScoreInfo    ScoreInfo  `json:"score_info"`
	PlayerHero   PlayerHero `json:"player_hero"`
}

type ScoreInfo struct {
	AddScore *float64 `json:"add_score"`
	Level    *float64 `json:"level"`
	NewLevel *float64 `json:"new_level"`
	NewScore *float64 `json:"new_score"`
}

type PlayerHero struct {
	HeroID           int64   `json:"hero_id"`
	HeroName         string  `json:"hero_name"`
	HeroType         string  `json:"hero_type"`
	Kills            int     `json:"kills"`
	Deaths           int     `json:"deaths"`
	Assists          int     `json:"assists"`
	PlayTime         float64 `json:"play_time"`
	TotalHeroDamage  float64 `json:"total_hero_damage"`
	TotalDamageTaken float64 `json:"total_damage_taken"`
	TotalHeroHeal    float64 `json:"total_hero_heal"`
}

// PlayerStats is the aggregate player profile payload.
type PlayerStats struct {
	UID            int64           `json:"uid"`
	Name           string          `json:"name"`
	Updates        Updates         `json:"updates"`
	Player         PlayerSummary   `json:"player"`
	IsPrivate      bool            `json:"isPrivate"`
	Overall        OverallStats    `json:"overall_stats"`
	MatchHistory   []PlayerMatch   `json:"match_history"`
	RankHistory    []RankHistory   `json:"rank_history"`
	HeroMatchups   []HeroMatchup   `json:"hero_matchups"`
	TeamMates      []TeamMate      `json:"team_mates"`
	HeroesRanked   []HeroAggregate `json:"heroes_ranked"`
	HeroesUnranked []HeroAggregate `json:"heroes_unranked"`
	Maps           []MapAggregate  `json:"maps"`
}

type Updates struct {
	InfoUpdateTime    string  `json:"info_update_time"`
	LastHistoryUpdate *string `json:"last_history_update"`
	LastInsertedMatch *string `json:"last_inserted_match"`
	LastUpdateRequest *string `json:"last_update_request"`
}

type PlayerSummary struct {
	UID   int64      `json:"uid"`
	Level string     `json:"level"`
	Name  string     `json:"name"`
	Icon  PlayerIcon `json:"icon"`
	Rank  PlayerRank `json:"rank"`
	Team  ClubTeam   `json:"team"`
}

type PlayerIcon struct {
	PlayerIconID string `json:"player_icon_id"`
	PlayerIcon   string `json:"player_icon"`
}

type PlayerRank struct {
	Rank  string `json:"rank"`
	Image string `json:"image"`
	Color string `json:"color"`
}

type ClubTeam struct {
	ClubTeamID       string `json:"club_team_id"`
	ClubTeamMiniName string `json:"club_team_mini_name"`
	ClubTeamType     string `json:"club_team_type"`
}

type OverallStats struct {
	TotalMatches int64        `json:"total_matches"`
	TotalWins    int64        `json:"total_wins"`
	Unranked     SeasonTotals `json:"unranked"`
	Ranked       SeasonTotals `json:"ranked"`
}

type SeasonTotals struct {
	TotalMatches       int64   `json:"total_matches"`
	TotalWins          int64   `json:"total_wins"`
	TotalAssists       int64   `json:"total_assists"`
	TotalDeaths        int64   `json:"total_deaths"`
	TotalKills         int64   `json:"total_kills"`
	TotalTimePlayed    string  `json:"total_time_played"`
	TotalTimePlayedRaw float64 `json:"total_time_played_raw"`
	TotalMVP           int64   `json:"total_mvp"`
	TotalSVP           int64   `json:"total_svp"`
}

// PlayerMatch is the match-history row embedded in player-stats
// payloads. Its participant record is flattened relative to the
// standalone MatchHistoryItem shape.
type PlayerMatch struct {
	MatchUID       string             `json:"match_uid"`
	MapID          int64              `json:"map_id"`
	MapThumbnail   string             `json:"map_thumbnail"`
	Duration       float64            `json:"duration"`
	Season         int64              `json:"season"`
	WinnerSide     int64              `json:"winner_side"`
	MVPUID         int64              `json:"mvp_uid"`
	SVPUID         int64              `json:"svp_uid"`
	MatchTimeStamp int64              `json:"match_time_stamp"`
	PlayModeID     int64              `json:"play_mode_id"`
	GameModeID     int64              `json:"game_mode_id"`
	ScoreInfo      map[string]float64 `json:"score_info"`
	Performance    PlayerPerformance  `json:"player_performance"`
}

type PlayerPerformance struct {
	PlayerUID    int64    `json:"player_uid"`
	HeroID       int64    `json:"hero_id"`
	HeroName     string   `json:"hero_name"`
	HeroType     string   `json:"hero_type"`
	Kills        int      `json:"kills"`
	Deaths       int      `json:"deaths"`
	Assists      int      `json:"assists"`
	IsWin        WinScore `json:"is_win"`
	Disconnected bool     `json:"disconnected"`
	Camp         int64    `json:"camp"`
	ScoreChange  *float64 `json:"score_change"`
	Level        *float64 `json:"level"`
	NewLevel     *float64 `json:"new_level"`
	NewScore     *float64 `json:"new_score"`
}

type RankHistory struct {
	MatchTimeStamp   int64            `json:"match_time_stamp"`
	LevelProgression LevelProgression `json:"level_progression"`
	ScoreProgression ScoreProgression `json:"score_progression"`
}

type LevelProgression struct {
	From float64 `json:"from"`
	To   float64 `json:"to"`
}

type ScoreProgression struct {
	AddScore   float64 `json:"add_score"`
	TotalScore float64 `json:"total_score"`
}

type HeroMatchup struct {
	HeroID        *int64  `json:"hero_id"`
	HeroName      string  `json:"hero_name"`
	HeroClass     string  `json:"hero_class"`
	HeroThumbnail *string `json:"hero_thumbnail"`
	Matches       int64   `json:"matches"`
	Wins          int64   `json:"wins"`
	WinRate       string  `json:"win_rate"`
}

type TeamMate struct {
	PlayerInfo PlayerInfo `json:"player_info"`
	Matches    int64      `json:"matches"`
	Wins       int64      `json:"wins"`
	WinRate    string     `json:"win_rate"`
}

type PlayerInfo struct {
	NickName   string `json:"nick_name"`
	PlayerIcon string `json:"player_icon"`
	PlayerUID  int64  `json:"player_uid"`
}

type HeroAggregate struct {
	HeroID        int64      `json:"hero_id"`
	HeroName      string     `json:"hero_name"`
	HeroThumbnail string     `json:"hero_thumbnail"`
	Matches       int64      `json:"matches"`
	Wins          int64      `json:"wins"`
	MVP           int64      `json:"mvp"`
	SVP           int64      `json:"svp"`
	Kills         int64      `json:"kills"`
	Deaths        int64      `json:"deaths"`
	Assists       int64      `json:"assists"`
	PlayTime      float64    `json:"play_time"`
	Damage        float64    `json:"damage"`
	Heal          float64    `json:"heal"`
	DamageTaken   float64    `json:"damage_taken"`
	MainAttack    MainAttack `json:"main_attack"`
}

type MainAttack struct {
	Total int64 `json:"total"`
	Hits  int64 `json:"hits"`
}

type MapAggregate struct {
	MapID        int64   `json:"map_id"`
	MapThumbnail string  `json:"map_thumbnail,omitempty"`
	Matches      int64   `json:"matches"`
	Wins         int64   `json:"wins"`
	Kills        int64   `json:"kills"`
	Deaths       int64   `json:"deaths"`
	Assists      int64   `json:"assists"`
	PlayTime     float64 `json:"play_time"`
}
