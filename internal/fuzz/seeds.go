package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const maxSeedBytes = 64 << 10 // 64 KiB

const maxFuzzInput = 1 << 16 // 64 KiB

// luaSeeds cover the shapes the Roact rule inspects plus the usual Luau syntax.
var luaSeeds = []string{
	"",
	"local x = 1",
	`local Roact = require(game.ReplicatedStorage.Roact)
local e = Roact.createElement
return e("Frame", { Size = UDim2.new(1, 0, 1, 0), [Roact.Event.Activated] = function() end })`,
	`Roact.createElement("TextLabel", { Text = "hi", Bogus = 1, [Roact.Change.Text] = f, [Roact.Ref] = ref })`,
	`local R = Roact; R.createElement("Frame", {}, { Child = R.createElement("ImageLabel") })`,
	`local function f(...: number): (number, string) return ... end`,
	"export type Props = { text: string, onClick: ((rbx: GuiButton) -> ())? }",
	"local v = if a then 1 elseif b then 2 else 3",
	"for i = 1, 10 do if i % 2 == 0 then continue end end",
	"local s = `hello {name}!` .. [==[long]==]",
	"x += 1; y ..= 'z'; t[#t + 1] = {1, 2, 3, [k] = v, n = nil}",
	"setfenv(1, {}); dofile('x.lua'); getfenv(2)",
	"repeat local z = 1 until z",
	"obj:method 'str' {tbl} (1)",
	"if x then",
	"local t = {[1 = 2",
	"f(1, 2",
	"--[[ unterminated",
	"local s = 'unterminated",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range luaSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.lua и *.luau файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		if ext := filepath.Ext(path); ext != ".lua" && ext != ".luau" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) > maxSeedBytes {
		src = src[:maxSeedBytes]
	}
	return append([]byte(nil), src...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		input = input[:maxFuzzInput]
	}
	return append([]byte(nil), input...)
}
