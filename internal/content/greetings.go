package content

import (
	"fmt"
	"math/rand"

	"github.com/hitoshi/morningword/internal/model"
)

// greetingPools はテーマごとの朝の挨拶プール。
var greetingPools = map[model.Theme][]string{
	model.ThemeEncouragement: {
		"🌅 Good morning. He is already at work in your day.",
		"✝️ Rise, beloved. The Lord your God is with you.",
		"💛 You are not alone in this. He goes before you.",
		"🌄 A new morning. His strength is made perfect in you.",
		"🙏 Today is a gift. Walk in it with courage.",
		"🦅 Soar on wings like eagles. He renews the weary.",
		"🌿 Do not be discouraged. The Lord your God is near.",
		"☀️ Stand firm. The One who called you is faithful.",
		"✨ You were made for more than you can see right now.",
		"🌸 He holds your future. Rest in that this morning.",
		"💪 Courage is not the absence of fear. It is trusting Him through it.",
		"🔥 The same God who parted the sea walks with you today.",
		"🌊 Cast every burden on Him. He cares for you deeply.",
		"📣 Be strong. Be courageous. He has not left you.",
		"🌻 Today may be hard. He is still good. He is still here.",
		"🕊️ His peace will guard your heart as you step forward.",
		"🌙 Whatever kept you up - He was watching over you.",
		"🌤️ His mercies are fresh this morning. Receive them.",
		"💫 You are more than a conqueror through Christ who loves you.",
		"🎯 Fix your eyes on Him. Everything else will come into focus.",
		"🏔️ When the mountain feels immovable, remember who made it.",
		"🌱 Small steps of faith become great works in His hands.",
		"🔑 Every door He opens, no man can shut. Keep walking.",
		"⚓ He is your anchor. You will not drift beyond His reach.",
		"🛡️ You are covered. Go into today without fear.",
		"🌈 After every storm, He remains. And so will you.",
		"📖 His Word over you today: you are not forgotten.",
		"💡 When you cannot see the path, trust the One who laid it.",
		"🎶 Sing, even in the valley. He inhabits the praise of His people.",
		"🙌 He has not brought you this far to leave you here.",
	},
	model.ThemeWisdom: {
		"📖 Good morning. Still your heart. Listen for His voice.",
		"🕯️ Let His Word be a lamp to your feet today.",
		"🌿 True wisdom begins in reverence. Begin there this morning.",
		"🧭 When the path is unclear, the Word lights the way.",
		"🌅 A wise heart seeks counsel. His Word is always available.",
		"✝️ The mind renewed by truth sees what the world cannot.",
		"🔍 Search Scripture today. You will find what you need.",
		"📿 Lean not on your own understanding. Trust His.",
		"🌊 Deep calls to deep. Go deeper in Him today.",
		"🌱 What you plant in the Word today, you will harvest in due season.",
		"🔑 Understanding comes to those who ask. Ask boldly.",
		"🎓 A teachable heart is a treasure. Remain open.",
		"🕊️ Wisdom is not just knowing. It is walking in what you know.",
		"🌄 The fear of the Lord is the beginning. Start there.",
		"💡 His ways are higher. Trust what you cannot fully see.",
		"🧠 Renew your mind. The world will try to conform it daily.",
		"⚖️ Discernment is a gift. Ask for it without hesitation.",
		"📜 Every answer you need is hidden in plain sight in Scripture.",
		"🌙 Meditate on His Word. Let it go deep before the day begins.",
		"🏛️ Build on the rock. Everything else is shifting sand.",
		"✨ A wise person knows what they do not know. Stay humble.",
		"🌸 Knowledge puffs up. Love builds up. Pursue both today.",
		"🔭 Eternity in view changes every decision you make today.",
		"📣 Counsel from the Lord stands forever. Every other voice fades.",
		"🗝️ Obedience unlocks understanding. Step forward in faith.",
		"🌤️ The man who walks with the wise grows wise. Choose your circle.",
		"🌻 Guard your heart. What goes in shapes what comes out.",
		"💎 Wisdom is worth more than silver. Pursue it like treasure.",
		"🎯 The right word at the right time comes from a heart steeped in truth.",
		"🙏 Before you speak today, listen. Before you decide, pray.",
	},
	model.ThemePeace: {
		"🕊️ Good morning. You are held in perfect peace.",
		"🌊 Still waters. He leads you there. Follow.",
		"🌿 Breathe. He is sovereign over everything you are anxious about.",
		"☁️ Let your mind rest in Him. He guards what you give Him.",
		"🌅 The storm does not define the morning. He does.",
		"🙏 Cast it. Every weight. Every worry. He is able to carry it.",
		"💤 He gives sleep to His beloved. Rise in that rest.",
		"🌸 Do not be anxious. His peace surpasses all understanding.",
		"🌙 Last night He watched over you. This morning He still does.",
		"🕯️ A quiet spirit is a strong spirit. Still yourself before Him.",
		"🌤️ Whatever stirs in you today - bring it to Him first.",
		"🌈 The God of peace will crush every fear beneath your feet.",
		"⚓ You are anchored to something that cannot be shaken.",
		"🦢 Quiet your heart. He speaks in the stillness.",
		"☮️ He is not the author of confusion. Rest in His clarity.",
		"💛 You do not have to carry today alone. He is already in it.",
		"🌻 Tend to your soul this morning. Start with His presence.",
		"📖 His Word brings peace to the places that reasoning cannot reach.",
		"🌱 Growth happens in seasons of stillness. Do not rush through this.",
		"🎵 The Lord your God is in your midst. He rejoices over you.",
		"🛡️ Perfect love casts out fear. You are perfectly loved.",
		"🌊 The same voice that calmed the sea speaks peace to you now.",
		"🏡 In Him, you have a dwelling place no storm can take from you.",
		"💫 He keeps in perfect peace the mind that is stayed on Him.",
		"🌄 Rise without dread. He has already prepared this day.",
		"🕊️ Lay it down. He is a better keeper of it than you are.",
		"🌿 Peaceful mornings begin with surrendered hearts.",
		"✝️ The cross settled the greatest debt. Let that silence every other fear.",
		"🌅 His peace is not the absence of trouble. It is His presence in it.",
		"🙌 Today is not yours to carry. It is His to lead. Follow.",
	},
	model.ThemeStrength: {
		"💪 Good morning. You are stronger than yesterday because He is the same.",
		"🏔️ The mountain is real. But He who is in you is greater.",
		"🔥 His fire in you does not diminish. Draw from it today.",
		"⚔️ Put on the full armor. This is not a day to be unarmed.",
		"🦁 Be bold. The righteous are as bold as a lion.",
		"🌅 Rise, warrior. The battle belongs to the Lord.",
		"🛡️ He is your rock, your fortress, your deliverer. Stand on that.",
		"⚓ When your strength fails, His is just beginning.",
		"🏋️ He gives power to the weak. Ask for it this morning.",
		"🌊 He parted the sea. He will make a way for you too.",
		"🔑 Courage is not self-generated. It flows from knowing who holds you.",
		"✝️ The same power that raised Christ from the dead lives in you.",
		"🌤️ Weeping may last the night. Joy rises in the morning.",
		"🦅 He renews strength like eagles. Surrender the exhaustion.",
		"💫 You have not been given a spirit of fear. Walk in power today.",
		"🌱 Planted by living water, you will not wither under pressure.",
		"🔭 Eternal perspective turns every present hardship into light momentary trouble.",
		"🎯 Stay the course. The finish line is worth the race.",
		"📣 He who began a good work in you will complete it. Hold on.",
		"🌸 His grace is sufficient for exactly what you face today.",
		"⚡ His strength is not limited by your limitation. Trust that.",
		"🏹 Every arrow aimed at you must first pass through His hand.",
		"🌻 Even in the wilderness, He provides. You will not run dry.",
		"💡 The Lord is your light. You do not have to navigate darkness alone.",
		"🧱 Built on the rock, you will not be swept away.",
		"🌈 He turns mourning into dancing. The turn is coming.",
		"🙏 Lean hard into Him today. He does not bend under your weight.",
		"📖 Every promise He has made is yes and amen. Stand on them.",
		"🔥 The furnace did not consume them. The fourth man was in the fire.",
		"🌄 He restores the soul. Begin there. Everything else follows.",
	},
	model.ThemeFaith: {
		"✨ Good morning. Walk today by faith, not by what you see.",
		"🌱 A mustard seed of faith can move what towers over you.",
		"🕊️ Trust Him with the part of the story you cannot read yet.",
		"📖 Faith is not blind. It sees clearly - just beyond the visible.",
		"🌅 Step out. He meets faith in motion, not in hesitation.",
		"🔥 What God has spoken will come to pass. Hold the promise.",
		"⚓ Hope anchors the soul. Hope does not disappoint.",
		"🌊 Peter walked on water. He only sank when he stopped looking at Christ.",
		"💫 The unseen is more real than what you can touch today.",
		"🎯 Faith is the substance of things hoped for. Hope boldly.",
		"🌙 Even in darkness, Abraham believed. So can you.",
		"🏔️ Every miracle in Scripture began with someone who dared to believe.",
		"🌿 Do not despise the day of small beginnings. God is in it.",
		"🔑 Obedience is the language of faith. Take the next step.",
		"✝️ The resurrection is proof. What He promises, He performs.",
		"🌸 He is working even when you cannot see it. Especially then.",
		"🛡️ Faith is not a feeling. It is a fixed decision to trust God.",
		"💡 The same God who spoke light into darkness speaks into yours.",
		"🌤️ Clouds do not mean the sun has gone. He has not moved.",
		"🦅 Rise above circumstance. That is the altitude of faith.",
		"📣 Declare His promises out loud today. Faith comes by hearing.",
		"🎶 Praise before the breakthrough is the highest act of faith.",
		"🌻 Every answered prayer was once an impossible situation.",
		"💎 Tried faith is precious faith. The fire is making you stronger.",
		"🌈 He is the God of the impossible. Pray like it.",
		"🙌 When you cannot trace His hand, trust His heart.",
		"🌱 Water the seed of faith daily with His Word. Watch it grow.",
		"🔭 Fix your eyes on what is eternal. The temporary will not hold you.",
		"🏹 Release your arrow of faith. He will guide it to the target.",
		"🌄 The dawn breaks. His faithfulness is right on time.",
	},
	model.ThemeLove: {
		"❤️ Good morning, beloved. You are loved with an everlasting love.",
		"🌸 Nothing you do today will make Him love you more or less.",
		"🕊️ You were chosen before the foundation of the world. That is love.",
		"💛 His love is not earned. It is given. Receive it freely.",
		"✝️ The cross is the measure of how much He loves you. Immeasurable.",
		"🌅 Rise knowing you are seen, known, and deeply loved by the Creator.",
		"🌿 He calls you His own. That identity cannot be taken from you.",
		"🌊 His steadfast love never ceases. It was there when you woke up.",
		"💫 You are not loved for what you produce. You are loved because He chose you.",
		"🌹 Greater love has no one than this. He laid down His life for you.",
		"🙏 His love pursues. It does not give up. It never has.",
		"📖 He has engraved you on the palms of His hands. You are remembered.",
		"🌤️ Start today from a place of being loved, not trying to earn it.",
		"✨ You are His. That is your identity before any other label.",
		"🌸 Love is patient. Love is kind. He shows you both every morning.",
		"💡 The One who made the stars knows your name. That is love.",
		"🌻 He delights in you. Not in your performance. In you.",
		"🌙 While you slept, His love did not. It kept watch over you.",
		"🦋 You are a new creation. The old is gone. That is what love does.",
		"🌈 His mercies are new because His love is unfailing.",
		"❤️‍🔥 He loved you at your worst. Imagine what He will do with your best.",
		"🎵 He rejoices over you with singing. You are His song.",
		"🌱 Rooted in His love, nothing that comes today can uproot you.",
		"🏡 In Him you are home. No matter how far you have wandered.",
		"💎 You are precious in His sight. Honored. Loved.",
		"🌄 Before the day begins, He has already loved you through it.",
		"🕯️ His love is a light that darkness has never - and will never - overcome.",
		"🌊 Nothing in creation can separate you from His love. Nothing.",
		"🙌 Loved. Redeemed. Restored. Walk in that today.",
		"✝️ Every morning is proof that His mercies endure forever.",
	},
}

// Greeting はテーマに応じた朝の挨拶をランダムに1つ返す。
func Greeting(theme model.Theme, rng *rand.Rand) string {
	pool := greetingPools[model.NormalizeTheme(theme)]
	return pool[rng.Intn(len(pool))]
}

// welcomeTemplates はウェルカムSMSのテンプレート。%[1]s がテーマ、%[2]s が配信時刻。
var welcomeTemplates = []string{
	"🌅 Welcome to Selah.\n\nYou are subscribed to daily %[1]s verses, arriving each morning at %[2]s.\n\n\"The Lord bless you and keep you; the Lord make His face shine on you.\" - Numbers 6:24-25",
	"✝️ Welcome, beloved.\n\nEach morning at %[2]s, a %[1]s verse will meet you right where you are.\n\n\"Your word is a lamp to my feet and a light to my path.\" - Psalm 119:105",
	"🕊️ You have taken a faithful step.\n\nDaily %[1]s scripture will arrive at %[2]s to anchor your morning in truth.\n\n\"In the morning, Lord, you hear my voice.\" - Psalm 5:3",
	"🌿 Grace and peace to you.\n\nSelah will deliver a %[1]s verse each morning at %[2]s - a pause, a breath, a reminder.\n\n\"His mercies are new every morning. Great is Your faithfulness.\" - Lamentations 3:23",
	"📖 Welcome to the daily Word.\n\n%[1]s scripture, sent faithfully at %[2]s each morning.\n\n\"So faith comes from hearing, and hearing through the word of Christ.\" - Romans 10:17",
}

// WelcomeMessage は購読完了時に送るウェルカムメッセージを組み立てる。
func WelcomeMessage(theme model.Theme, sendTime string, rng *rand.Rand) string {
	tmpl := welcomeTemplates[rng.Intn(len(welcomeTemplates))]
	return fmt.Sprintf(tmpl, string(theme), sendTime)
}

// DeliveryMessage は日次配信SMSの本文を組み立てる。
func DeliveryMessage(theme model.Theme, verse Verse, rng *rand.Rand) string {
	return fmt.Sprintf("%s\n\n\"%s\"\n\n- %s", Greeting(theme, rng), verse.Text, verse.Ref)
}
