package catalog

type Item struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// The collectible kimchi list. Fixed size; dex completion percentage is
// computed against len(Items()).
var items = []Item{
	{ID: "baechu", Name: "Baechu Kimchi", Category: "cabbage"},
	{ID: "baek", Name: "Baek Kimchi", Category: "cabbage"},
	{ID: "bossam", Name: "Bossam Kimchi", Category: "cabbage"},
	{ID: "bomdong", Name: "Bomdong Kimchi", Category: "cabbage"},
	{ID: "putbaechu", Name: "Putbaechu Kimchi", Category: "cabbage"},
	{ID: "eolgari", Name: "Eolgari Kimchi", Category: "cabbage"},
	{ID: "yangbaechu", Name: "Yangbaechu Kimchi", Category: "cabbage"},
	{ID: "geotjeori", Name: "Geotjeori", Category: "cabbage"},
	{ID: "kkakdugi", Name: "Kkakdugi", Category: "radish"},
	{ID: "chonggak", Name: "Chonggak Kimchi", Category: "radish"},
	{ID: "seokbakji", Name: "Seokbakji", Category: "radish"},
	{ID: "sunmu", Name: "Sunmu Kimchi", Category: "radish"},
	{ID: "yeolmu", Name: "Yeolmu Kimchi", Category: "radish"},
	{ID: "yeolmu-mul", Name: "Yeolmu Mul Kimchi", Category: "water"},
	{ID: "dongchimi", Name: "Dongchimi", Category: "water"},
	{ID: "nabak", Name: "Nabak Kimchi", Category: "water"},
	{ID: "mul", Name: "Mul Kimchi", Category: "water"},
	{ID: "oi-sobagi", Name: "Oi Sobagi", Category: "cucumber"},
	{ID: "oi-mul", Name: "Oi Mul Kimchi", Category: "cucumber"},
	{ID: "gat", Name: "Gat Kimchi", Category: "greens"},
	{ID: "dolsan-gat", Name: "Dolsan Gat Kimchi", Category: "greens"},
	{ID: "pa", Name: "Pa Kimchi", Category: "greens"},
	{ID: "jjokpa", Name: "Jjokpa Kimchi", Category: "greens"},
	{ID: "buchu", Name: "Buchu Kimchi", Category: "greens"},
	{ID: "kkaennip", Name: "Kkaennip Kimchi", Category: "greens"},
	{ID: "godeulppaegi", Name: "Godeulppaegi Kimchi", Category: "greens"},
	{ID: "minari", Name: "Minari Kimchi", Category: "greens"},
	{ID: "dallae", Name: "Dallae Kimchi", Category: "greens"},
	{ID: "naengi", Name: "Naengi Kimchi", Category: "greens"},
	{ID: "dureup", Name: "Dureup Kimchi", Category: "greens"},
	{ID: "gondeure", Name: "Gondeure Kimchi", Category: "greens"},
	{ID: "chwinamul", Name: "Chwinamul Kimchi", Category: "greens"},
	{ID: "ueong", Name: "Ueong Kimchi", Category: "root"},
	{ID: "yeongeun", Name: "Yeongeun Kimchi", Category: "root"},
	{ID: "doraji", Name: "Doraji Kimchi", Category: "root"},
	{ID: "deodeok", Name: "Deodeok Kimchi", Category: "root"},
	{ID: "maneuljjong", Name: "Maneuljjong Kimchi", Category: "root"},
	{ID: "gaji", Name: "Gaji Kimchi", Category: "vegetable"},
	{ID: "hobak", Name: "Hobak Kimchi", Category: "vegetable"},
	{ID: "gochu", Name: "Gochu Kimchi", Category: "vegetable"},
	{ID: "kongnip", Name: "Kongnip Kimchi", Category: "vegetable"},
	{ID: "yangpa", Name: "Yangpa Kimchi", Category: "vegetable"},
	{ID: "tomato", Name: "Tomato Kimchi", Category: "vegetable"},
	{ID: "sangchu", Name: "Sangchu Kimchi", Category: "vegetable"},
	{ID: "gul", Name: "Gul Kimchi", Category: "special"},
	{ID: "nakji", Name: "Nakji Kimchi", Category: "special"},
	{ID: "jeonbok", Name: "Jeonbok Kimchi", Category: "special"},
	{ID: "seokryu", Name: "Seokryu Kimchi", Category: "special"},
	{ID: "insam", Name: "Insam Kimchi", Category: "special"},
	{ID: "pyogo", Name: "Pyogo Kimchi", Category: "special"},
}

func Items() []Item {
	return items
}

func ItemByID(id string) (Item, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// CatalogSize is the denominator for dex completion percentage.
func CatalogSize() int {
	return len(items)
}
