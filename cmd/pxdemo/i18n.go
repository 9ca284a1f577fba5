// Package main provides localization for the pxdemo CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Draw pictures with the px software rasterizer": "pxソフトウェアラスタライザで画像を描画",
		"Log level (debug, info, warn, error)":          "ログレベル（debug, info, warn, error）",

		// Render command
		"Render a YAML scene to an image":                    "YAMLシーンを画像に描画",
		"Output file (.ppm, .png, .bmp, .tif), - for stdout": "出力ファイル（.ppm, .png, .bmp, .tif）、- で標準出力",
		"Integer magnification (overrides the scene)":        "整数倍率（シーンの指定を上書き）",
		"Format used when writing to stdout":                 "標準出力に書き出すときの形式",
		"scene file is required":                             "シーンファイルを指定してください",

		// Demo command
		"Draw a built-in demo picture":  "組み込みのデモ画像を描画",
		"Canvas size in pixels":         "キャンバスのサイズ（ピクセル）",
		"demo name is required":         "デモ名を指定してください",
		"Demo %s drawn at %dx%d":        "デモ %s を %dx%d で描画しました",
		"size must be between 1 and %d": "サイズは1から%dの範囲で指定してください",

		// Colors command
		"List the named colors": "名前付きカラーの一覧を表示",

		// Version command
		"Show version information": "バージョン情報を表示",
		"pxdemo version %s":        "pxdemo バージョン %s",

		// Output
		"Saved %s": "%s を保存しました",
		"refusing to write a binary image to a terminal; redirect stdout or use -o FILE": "端末にはバイナリ画像を出力できません。標準出力をリダイレクトするか -o FILE を指定してください",
	})
}
