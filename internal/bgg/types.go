package bgg

import "strings"

// The upstream XML is loosely shaped: a scalar field may arrive as bare
// element text ("<name>Catan</name>") or carry its payload in a value
// attribute ("<name value="Catan"/>"), and repeated fields may arrive once or
// many times. The payload types below absorb every shape the API is known to
// produce, and normalize converts the first item into a strict GameDetail.
// Nothing outside this file sees the ambiguous representation.

type searchResponse struct {
	Games []searchItem `xml:"boardgame"`
}

type searchItem struct {
	ObjectID string   `xml:"objectid,attr"`
	Names    []scalar `xml:"name"`
}

type thingResponse struct {
	Items []thingItem `xml:"item"`
}

type thingItem struct {
	ID          string   `xml:"id,attr"`
	Names       []scalar `xml:"name"`
	MinPlayers  []scalar `xml:"minplayers"`
	MaxPlayers  []scalar `xml:"maxplayers"`
	PlayingTime []scalar `xml:"playingtime"`
	Image       []scalar `xml:"image"`
	Thumbnail   []scalar `xml:"thumbnail"`
}

// scalar is a field that is either bare text or a value attribute.
type scalar struct {
	Value string `xml:"value,attr"`
	Text  string `xml:",chardata"`
}

func (s scalar) String() string {
	if s.Value != "" {
		return s.Value
	}
	return strings.TrimSpace(s.Text)
}

// firstScalar applies the first-item rule for fields of inconsistent
// cardinality.
func firstScalar(values []scalar) string {
	if len(values) == 0 {
		return ""
	}
	return values[0].String()
}

// GameDetail is the canonical, fully-resolved detail record for one game.
type GameDetail struct {
	BGGID      string
	Name       string
	MinPlayers string
	MaxPlayers string
	PlayTime   string
	Image      string
	Thumbnail  string
}

// PlayerCountRange renders the synthetic "min-max" range stored in the
// player_count column, even when min and max are equal.
func (d GameDetail) PlayerCountRange() string {
	return d.MinPlayers + "-" + d.MaxPlayers
}

// normalize maps one upstream item onto a GameDetail, defaulting absent
// fields to "Unknown" the way every existing import was written.
func normalize(item thingItem) GameDetail {
	return GameDetail{
		Name:       orUnknown(firstScalar(item.Names)),
		MinPlayers: orUnknown(firstScalar(item.MinPlayers)),
		MaxPlayers: orUnknown(firstScalar(item.MaxPlayers)),
		PlayTime:   orUnknown(firstScalar(item.PlayingTime)),
		Image:      firstScalar(item.Image),
		Thumbnail:  firstScalar(item.Thumbnail),
	}
}

func orUnknown(v string) string {
	if v == "" {
		return "Unknown"
	}
	return v
}
