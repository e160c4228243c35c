// Package content は配信メッセージのコンテンツ選択を提供する。
// 聖句・挨拶・ウェルカムメッセージはすべて純粋関数として実装し、
// 乱数源は呼び出し元から明示的に注入する。
package content

import (
	"time"

	"github.com/hitoshi/morningword/internal/model"
)

// Verse は聖句とその参照箇所を表す。
type Verse struct {
	Text string
	Ref  string
}

// versePools はテーマごとの聖句プール。
var versePools = map[model.Theme][]Verse{
	model.ThemeEncouragement: {
		{Text: "I can do all things through Christ who strengthens me.", Ref: "Philippians 4:13"},
		{Text: "For I know the plans I have for you, declares the Lord, plans to prosper you and not to harm you, plans to give you hope and a future.", Ref: "Jeremiah 29:11"},
		{Text: "Be strong and courageous. Do not be afraid; do not be discouraged, for the Lord your God will be with you wherever you go.", Ref: "Joshua 1:9"},
		{Text: "Come to me, all you who are weary and burdened, and I will give you rest.", Ref: "Matthew 11:28"},
		{Text: "The Lord himself goes before you and will be with you; he will never leave you nor forsake you.", Ref: "Deuteronomy 31:8"},
		{Text: "But those who hope in the Lord will renew their strength. They will soar on wings like eagles.", Ref: "Isaiah 40:31"},
		{Text: "Cast all your anxiety on him because he cares for you.", Ref: "1 Peter 5:7"},
	},
	model.ThemeWisdom: {
		{Text: "Trust in the Lord with all your heart and lean not on your own understanding; in all your ways submit to him, and he will make your paths straight.", Ref: "Proverbs 3:5-6"},
		{Text: "If any of you lacks wisdom, you should ask God, who gives generously to all without finding fault, and it will be given to you.", Ref: "James 1:5"},
		{Text: "The fear of the Lord is the beginning of wisdom, and knowledge of the Holy One is understanding.", Ref: "Proverbs 9:10"},
		{Text: "Your word is a lamp for my feet, a light on my path.", Ref: "Psalm 119:105"},
		{Text: "Do not conform to the pattern of this world, but be transformed by the renewing of your mind.", Ref: "Romans 12:2"},
		{Text: "Listen to advice and accept discipline, and at the end you will be counted among the wise.", Ref: "Proverbs 19:20"},
	},
	model.ThemePeace: {
		{Text: "Peace I leave with you; my peace I give you. I do not give to you as the world gives. Do not let your hearts be troubled.", Ref: "John 14:27"},
		{Text: "And the peace of God, which transcends all understanding, will guard your hearts and your minds in Christ Jesus.", Ref: "Philippians 4:7"},
		{Text: "You will keep in perfect peace those whose minds are steadfast, because they trust in you.", Ref: "Isaiah 26:3"},
		{Text: "The Lord gives strength to his people; the Lord blesses his people with peace.", Ref: "Psalm 29:11"},
		{Text: "Do not be anxious about anything, but in every situation, by prayer and petition, with thanksgiving, present your requests to God.", Ref: "Philippians 4:6"},
	},
	model.ThemeStrength: {
		{Text: "The Lord is my strength and my song; he has given me victory.", Ref: "Exodus 15:2"},
		{Text: "He gives strength to the weary and increases the power of the weak.", Ref: "Isaiah 40:29"},
		{Text: "I lift up my eyes to the mountains - where does my help come from? My help comes from the Lord.", Ref: "Psalm 121:1-2"},
		{Text: "Be on your guard; stand firm in the faith; be courageous; be strong.", Ref: "1 Corinthians 16:13"},
		{Text: "The Lord is my rock, my fortress and my deliverer; my God is my rock, in whom I take refuge.", Ref: "Psalm 18:2"},
		{Text: "Finally, be strong in the Lord and in his mighty power.", Ref: "Ephesians 6:10"},
	},
	model.ThemeFaith: {
		{Text: "Now faith is confidence in what we hope for and assurance about what we do not see.", Ref: "Hebrews 11:1"},
		{Text: "For we live by faith, not by sight.", Ref: "2 Corinthians 5:7"},
		{Text: "Jesus replied, 'What is impossible with man is possible with God.'", Ref: "Luke 18:27"},
		{Text: "If you have faith as small as a mustard seed, you can say to this mountain, 'Move from here to there,' and it will move.", Ref: "Matthew 17:20"},
		{Text: "And without faith it is impossible to please God, because anyone who comes to him must believe that he exists.", Ref: "Hebrews 11:6"},
	},
	model.ThemeLove: {
		{Text: "For God so loved the world that he gave his one and only Son, that whoever believes in him shall not perish but have eternal life.", Ref: "John 3:16"},
		{Text: "Love is patient, love is kind. It does not envy, it does not boast, it is not proud.", Ref: "1 Corinthians 13:4"},
		{Text: "We love because he first loved us.", Ref: "1 John 4:19"},
		{Text: "Greater love has no one than this: to lay down one's life for one's friends.", Ref: "John 15:13"},
		{Text: "And over all these virtues put on love, which binds them all together in perfect unity.", Ref: "Colossians 3:14"},
	},
}

// DailyVerse は指定した暦日のテーマ別聖句を返す。
// 年間通算日をプール長で割った剰余で選択するため、同じ日に同じテーマの
// 全購読者へ同じ聖句が届く。未知のテーマはデフォルトテーマにフォールバックする。
func DailyVerse(theme model.Theme, day time.Time) Verse {
	pool := versePools[model.NormalizeTheme(theme)]
	return pool[day.YearDay()%len(pool)]
}
