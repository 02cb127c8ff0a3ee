package astock

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// TagCatalog is the authoritative code -> (name, ordered tags) table. It is
// seeded with a curated list and extended by user upserts. Entries keep their
// insertion order for deterministic listing.
type TagCatalog struct {
	codes []string
	rows  map[string]CatalogRow
}

// CatalogRow is one curated catalog entry.
type CatalogRow struct {
	Code string   `json:"code"`
	Name string   `json:"name"`
	Tags []string `json:"tags"`
}

// NewTagCatalog returns an empty catalog.
func NewTagCatalog() *TagCatalog {
	return &TagCatalog{rows: make(map[string]CatalogRow)}
}

// NewSeededTagCatalog returns a catalog pre-filled with the curated seed.
func NewSeededTagCatalog() *TagCatalog {
	c := NewTagCatalog()
	// the built-in seed is valid by construction
	if err := c.ImportSeed(strings.NewReader(defaultSeed)); err != nil {
		panic(err)
	}
	return c
}

// Upsert inserts or overwrites the catalog row for code.
func (c *TagCatalog) Upsert(code, name string, tags []string) {
	if _, ok := c.rows[code]; !ok {
		c.codes = append(c.codes, code)
	}
	c.rows[code] = CatalogRow{Code: code, Name: name, Tags: tags}
}

// Lookup returns the curated tags for code, or ErrNotFound.
func (c *TagCatalog) Lookup(code string) ([]string, error) {
	row, ok := c.rows[code]
	if !ok {
		return nil, fmt.Errorf("code %q: %w", code, ErrNotFound)
	}
	return row.Tags, nil
}

// Rows returns all catalog rows in insertion order.
func (c *TagCatalog) Rows() []CatalogRow {
	rows := make([]CatalogRow, 0, len(c.codes))
	for _, code := range c.codes {
		rows = append(rows, c.rows[code])
	}
	return rows
}

// Len returns the number of catalog rows.
func (c *TagCatalog) Len() int { return len(c.codes) }

// ImportSeed reads catalog rows from the flat seed form, one row per line:
// "code|name|comma-separated-tags". Lines starting with '#' and blank lines
// are skipped.
func (c *TagCatalog) ImportSeed(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "|", 3)
		if len(parts) != 3 {
			return fmt.Errorf("seed line %d: want code|name|tags, got %q", n, line)
		}
		var tags []string
		for _, t := range strings.Split(parts[2], ",") {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, t)
			}
		}
		c.Upsert(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), tags)
	}
	return scanner.Err()
}

// boardTags maps a numeric code prefix to its board segment. Two-digit
// prefixes are checked before one-digit ones.
var boardTags = []struct {
	prefix string
	tag    string
}{
	{"60", "沪市主板"},
	{"00", "深市主板"},
	{"30", "创业板"},
	{"68", "科创板"},
	{"8", "北交所"},
	{"4", "北交所"},
}

// sectorRules is the ordered keyword heuristic table applied to a security
// name when the catalog has no curated entry. Each rule contributes at most
// one tag; rule order is preserved and no de-duplication is performed.
var sectorRules = []struct {
	tag      string
	keywords []string
}{
	{"科技", []string{"科技", "软件", "信息", "网络", "数据", "智能", "云", "互联"}},
	{"新能源", []string{"能源", "锂", "光伏", "电池", "风电", "储能"}},
	{"医药", []string{"医药", "生物", "制药", "医疗", "药业", "健康"}},
	{"金融", []string{"银行", "证券", "保险", "信托", "金融"}},
	{"军工", []string{"军工", "航天", "航空", "国防", "船舶", "兵器"}},
	{"消费", []string{"食品", "饮料", "酒", "乳业", "零售", "消费"}},
	{"资源", []string{"矿业", "煤", "钢铁", "铝业", "铜业", "黄金", "石油", "有色"}},
	{"地产", []string{"地产", "置业", "城建", "房"}},
	{"汽车", []string{"汽车", "整车", "零部件"}},
	{"机器人", []string{"机器人", "自动化"}},
	{"半导体", []string{"半导体", "芯片", "集成电路", "微电子"}},
}

// Classify computes the ordered tag list for a security. The board-segment
// tag always comes first; curated catalog tags follow verbatim when present,
// otherwise the keyword heuristics run in table order.
func (c *TagCatalog) Classify(code, name string) []string {
	var tags []string
	bare := BareCode(code)
	for _, b := range boardTags {
		if strings.HasPrefix(bare, b.prefix) {
			tags = append(tags, b.tag)
			break
		}
	}
	if row, ok := c.rows[bare]; ok {
		return append(tags, row.Tags...)
	}
	for _, rule := range sectorRules {
		for _, kw := range rule.keywords {
			if strings.Contains(name, kw) {
				tags = append(tags, rule.tag)
				break
			}
		}
	}
	return tags
}

// defaultSeed is the curated catalog shipped with the tool, in the same flat
// form accepted by tag-import.
const defaultSeed = `# code|name|tags
600519|贵州茅台|白酒,消费
000858|五粮液|白酒,消费
601318|中国平安|金融,保险
600036|招商银行|金融,银行
300750|宁德时代|新能源,锂电池
002594|比亚迪|新能源,汽车
688981|中芯国际|半导体,芯片
600276|恒瑞医药|医药,创新药
601012|隆基绿能|新能源,光伏
000333|美的集团|消费,家电
600900|长江电力|公用事业,电力
002415|海康威视|科技,安防
601888|中国中免|消费,免税
300059|东方财富|金融,互联网券商
`
