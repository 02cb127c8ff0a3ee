package astock

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestClassify_BoardTagFirst(t *testing.T) {
	c := NewSeededTagCatalog()
	testCases := []struct {
		code string
		name string
		want string
	}{
		{"600519", "贵州茅台", "沪市主板"},
		{"000858", "五粮液", "深市主板"},
		{"300605", "恒锋信息", "创业板"},
		{"688981", "中芯国际", "科创板"},
		{"830799", "艾融软件", "北交所"},
		{"430047", "诺思兰德", "北交所"},
	}
	for _, tc := range testCases {
		tags := c.Classify(tc.code, tc.name)
		if len(tags) == 0 || tags[0] != tc.want {
			t.Errorf("Classify(%q, %q) = %v; want first tag %q", tc.code, tc.name, tags, tc.want)
		}
	}
}

func TestClassify_CuratedTagsVerbatim(t *testing.T) {
	c := NewSeededTagCatalog()
	got := c.Classify("600519", "贵州茅台")
	want := []string{"沪市主板", "白酒", "消费"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Classify(600519) = %v; want %v", got, want)
	}
}

func TestClassify_KeywordFallback(t *testing.T) {
	c := NewSeededTagCatalog()
	// not in the catalog: the name heuristics apply
	got := c.Classify("300605", "恒锋信息")
	want := []string{"创业板", "科技"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Classify(300605) = %v; want %v", got, want)
	}
}

func TestClassify_RuleOrderPreserved(t *testing.T) {
	c := NewTagCatalog()
	// a name hitting several rules collects one tag per rule, in table order
	got := c.Classify("002230", "科大讯飞智能医疗科技")
	want := []string{"深市主板", "科技", "医药"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Classify = %v; want %v", got, want)
	}
}

func TestClassify_Pure(t *testing.T) {
	c := NewSeededTagCatalog()
	first := c.Classify("601318", "中国平安")
	for i := 0; i < 5; i++ {
		if got := c.Classify("601318", "中国平安"); !reflect.DeepEqual(got, first) {
			t.Fatalf("call %d returned %v; first returned %v", i, got, first)
		}
	}
}

func TestCatalog_UpsertOverwrites(t *testing.T) {
	c := NewTagCatalog()
	c.Upsert("600999", "招商证券", []string{"金融"})
	c.Upsert("600999", "招商证券", []string{"金融", "券商"})
	tags, err := c.Lookup("600999")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if !reflect.DeepEqual(tags, []string{"金融", "券商"}) {
		t.Errorf("tags = %v after overwrite", tags)
	}
	if c.Len() != 1 {
		t.Errorf("catalog has %d rows; want 1", c.Len())
	}
}

func TestCatalog_LookupNotFound(t *testing.T) {
	c := NewTagCatalog()
	if _, err := c.Lookup("999999"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Lookup(999999) = %v; want ErrNotFound", err)
	}
}

func TestCatalog_ImportSeed(t *testing.T) {
	seed := `# comment line
600519|贵州茅台|白酒,消费

000001|平安银行|金融, 银行
`
	c := NewTagCatalog()
	if err := c.ImportSeed(strings.NewReader(seed)); err != nil {
		t.Fatalf("ImportSeed: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("catalog has %d rows; want 2", c.Len())
	}
	tags, _ := c.Lookup("000001")
	if !reflect.DeepEqual(tags, []string{"金融", "银行"}) {
		t.Errorf("tags = %v; want [金融 银行]", tags)
	}
}

func TestCatalog_ImportSeedMalformed(t *testing.T) {
	c := NewTagCatalog()
	if err := c.ImportSeed(strings.NewReader("600519;贵州茅台")); err == nil {
		t.Error("malformed seed line accepted")
	}
}
