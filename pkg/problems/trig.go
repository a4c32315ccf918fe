package problems

type trigEntry struct {
	text   string
	spoken string
	angles []int // every angle in [0, 360) satisfying the question, or the value asked for
}

var trigTable = []trigEntry{
	{"sin0° = ?", "чему равен синус нуля градусов", []int{0}},
	{"cos0° = ?", "чему равен косинус нуля градусов", []int{1}},
	{"tg0° = ?", "чему равен тангенс нуля градусов", []int{0}},
	{"sin?° = 1/2", "синус какого угла равен одной второй", []int{30, 150}},
	{"cos?° = √3/2", "косинус какого угла равен корню из трех деленному на два", []int{30, 330}},
	{"tg?° = 1/√3", "тангенс какого угла равен единице деленной на корень из трех", []int{30, 210}},
	{"ctg?° = √3", "котангенс какого угла равен корню из трех", []int{30, 210}},
	{"sin?° = √2/2", "синус какого угла равен корню из двух деленному на два", []int{45, 135}},
	{"cos?° = √2/2", "косинус какого угла равен корню из двух деленному на два", []int{45, 315}},
	{"tg45° = ?", "чему равен тангенс сорока пяти градусов", []int{1}},
	{"ctg45° = ?", "чему равен котангенс сорока пяти градусов", []int{1}},
	{"cos?° = 1/2", "косинус какого угла равен одной второй", []int{60, 300}},
	{"sin?° = √3/2", "синус какого угла равен корню из трех деленному на два", []int{60, 120}},
	{"ctg?° = 1/√3", "котангенс какого угла равен единице деленной на корень из трех", []int{60, 240}},
	{"tg?° = √3", "тангенс какого угла равен корню из трех", []int{60, 240}},
	{"sin90° = ?", "чему равен синус девяноста градусов", []int{1}},
	{"cos90° = ?", "чему равен косинус девяноста градусов", []int{0}},
	{"ctg90° = ?", "чему равен котангенс девяноста градусов", []int{0}},
	{"cos?° = -1/2", "косинус какого угла равен минус одной второй", []int{120, 240}},
	{"ctg?° = -1/√3", "котангенс какого угла равен минус единице деленной на корень из трех", []int{120, 300}},
	{"tg?° = -√3", "тангенс какого угла равен минус корню из трех", []int{120, 300}},
	{"cos?° = -√2/2", "косинус какого угла равен минус корню из двух деленному на два", []int{135, 225}},
	{"tg135° = ?", "чему равен тангенс ста тридцати пяти градусов", []int{-1}},
	{"ctg135° = ?", "чему равен котангенс ста тридцати пяти градусов", []int{-1}},
	{"cos?° = -√3/2", "косинус какого угла равен минус корню из трех деленному на два", []int{150, 210}},
	{"tg?° = -1/√3", "тангенс какого угла равен минус единице деленной на корень из трех", []int{150, 330}},
	{"ctg?° = -√3", "котангенс какого угла равен минус корню из трех", []int{150, 330}},
	{"sin180° = ?", "чему равен синус ста восьмидесяти градусов", []int{0}},
	{"cos180° = ?", "чему равен косинус ста восьмидесяти градусов", []int{-1}},
	{"tg180° = ?", "чему равен тангенс ста восьмидесяти градусов", []int{0}},
	{"sin?° = -1/2", "синус какого угла равен минус одной второй", []int{210, 330}},
	{"sin?° = -√2/2", "синус какого угла равен минус корню из двух деленному на два", []int{225, 315}},
	{"tg225° = ?", "чему равен тангенс двухсот двадцати пяти градусов", []int{1}},
	{"ctg225° = ?", "чему равен котангенс двухсот двадцати пяти градусов", []int{1}},
	{"sin?° = -√3/2", "синус какого угла равен минус корню из трех деленному на два", []int{240, 300}},
	{"sin270° = ?", "чему равен синус двухсот семидесяти градусов", []int{-1}},
	{"cos270° = ?", "чему равен косинус двухсот семидесяти градусов", []int{0}},
	{"ctg270° = ?", "чему равен котангенс двухсот семидесяти градусов", []int{0}},
	{"sin360° = ?", "чему равен синус трехсот шестидесяти градусов", []int{0}},
	{"cos360° = ?", "чему равен косинус трехсот шестидесяти градусов", []int{1}},
	{"tg360° = ?", "чему равен тангенс трехсот шестидесяти градусов", []int{0}},
}

// TrigRows is the size of the trigonometry table.
func TrigRows() int {
	return len(trigTable)
}

// AngleMatches reports whether v equals one of the accepted answers modulo 360.
// Negative table values such as tg135° = -1 are compared as they are.
func AngleMatches(angles []int, v int) bool {
	norm := ((v % 360) + 360) % 360
	for _, a := range angles {
		if a == v || a == norm {
			return true
		}
	}
	return false
}
