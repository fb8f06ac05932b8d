package level

import "github.com/lixenwraith/snek/parameter"

var builtinLevels = [parameter.LevelCount]string{`
.........E..........
....................
....................
....................
....................
....................
...................4
.....S>.............
....................
....................
....................
2...................
....................
....................
.........3.......1..
`, `
......2.............
....................
...................1
....S>..............
....................
....................
....................
...WWWWWWWWWWWWWW...
....................
...................4
....................
E...................
....................
....................
..................3.
`, `
4...................
....................
.....W........W.....
.....W........W.....
.....W........W....E
.....W........W.....
.....W........W.....
.....W........W.....
2....W........W.....
.....W........W.....
.....W....^...W.....
.....W....S...W.....
.....W........W.....
....................
1........3..........
`, `
.....2.............1
..S>................
....................
..WWWWWWWWWWWW......
....................
3...................
....................
......WWWWWWWWWWWW..
....................
....................
....................
..WWWWWWWWWWWW......
....................
...................E
......4.............
`, `
...2................
..S>................
....................
3....WWWWWWWWWW.....
....................
...W............W...
...W............W...
...W............W..E
...W............W...
...W............W...
....................
.....WWWWWWWWWW.....
....................
...................4
...1................
`}

// Builtin serves the embedded level set
type Builtin struct{}

// Load parses built-in level n; numbers outside 1..LevelCount wrap to level 1
func (Builtin) Load(n int) (Parsed, error) {
	if n < 1 || n > parameter.LevelCount {
		n = 1
	}
	return Parse(n, builtinLevels[n-1])
}
