package legacyfmt

import "testing"

// These inputs are MOTDs captured from real servers' status responses.

func TestServerMineSuperior(t *testing.T) {
	s := " §7§l<§a§l+§7§l>§8§l§m-----§8§l[ §a§lMine§7§lSuperior§a§l Network§8§l ]§8§l§m-----§7§l<§a§l+§7§l>\n" +
		"§a§l§n1.7-1.16 SUPPORT§r §7§l| §a§lSITE§7§l:§a§l§nwww.minesuperior.com"
	assertSpans(t, Parse(s), []Span{
		Plain(" "),
		Styled("<", Gray, StyleBold),
		Styled("+", Green, StyleBold),
		Styled(">", Gray, StyleBold),
		Styled("-----", DarkGray, StyleBold|StyleStrikethrough),
		Styled("[ ", DarkGray, StyleBold),
		Styled("Mine", Green, StyleBold),
		Styled("Superior", Gray, StyleBold),
		Styled(" Network", Green, StyleBold),
		Styled(" ]", DarkGray, StyleBold),
		Styled("-----", DarkGray, StyleBold|StyleStrikethrough),
		Styled("<", Gray, StyleBold),
		Styled("+", Green, StyleBold),
		Styled(">\n", Gray, StyleBold),
		Styled("1.7-1.16 SUPPORT", Green, StyleBold|StyleUnderlined),
		Plain(" "),
		Styled("| ", Gray, StyleBold),
		Styled("SITE", Green, StyleBold),
		Styled(":", Gray, StyleBold),
		Styled("www.minesuperior.com", Green, StyleBold|StyleUnderlined),
	})
}

// Exercises uppercase codes and the whitespace strikethrough collapse.
func TestServerPurplePrison(t *testing.T) {
	s := "§5§m                  §6>§7§l§6§l>§6§l[§5§l§oPurple §8§l§oPrison§6§l]§6§l<§6<§5§m                     " +
		"§R §7              (§4!§7) §e§lSERVER HAS §D§LRESET! §7(§4!§7)"
	assertSpans(t, Parse(s), []Span{
		StrikethroughWhitespace("                  ", DarkPurple, StyleStrikethrough),
		Styled(">", Gold, 0),
		Styled(">", Gold, StyleBold),
		Styled("[", Gold, StyleBold),
		Styled("Purple ", DarkPurple, StyleBold|StyleItalic),
		Styled("Prison", DarkGray, StyleBold|StyleItalic),
		Styled("]", Gold, StyleBold),
		Styled("<", Gold, StyleBold),
		Styled("<", Gold, 0),
		StrikethroughWhitespace("                     ", DarkPurple, StyleStrikethrough),
		Plain(" "),
		Styled("              (", Gray, 0),
		Styled("!", DarkRed, 0),
		Styled(") ", Gray, 0),
		Styled("SERVER HAS ", Yellow, StyleBold),
		Styled("RESET! ", LightPurple, StyleBold),
		Styled("(", Gray, 0),
		Styled("!", DarkRed, 0),
		Styled(")", Gray, 0),
	})
}

// A single non-strikethrough space must stay a styled span, not collapse.
func TestServerMineHeroes(t *testing.T) {
	s := "§f§b§lMINE§6§lHEROES §7- §astore.mineheroes.net§a §2§l[75% Sale]\n" +
		"§b§lSKYBLOCK §f§l+ §2§lKRYPTON §f§lRESET! §f§l- §6§lNEW FALL CRATE"
	assertSpans(t, Parse(s), []Span{
		Styled("MINE", Aqua, StyleBold),
		Styled("HEROES ", Gold, StyleBold),
		Styled("- ", Gray, 0),
		Styled("store.mineheroes.net", Green, 0),
		Styled(" ", Green, 0),
		Styled("[75% Sale]\n", DarkGreen, StyleBold),
		Styled("SKYBLOCK ", Aqua, StyleBold),
		Styled("+ ", White, StyleBold),
		Styled("KRYPTON ", DarkGreen, StyleBold),
		Styled("RESET! ", White, StyleBold),
		Styled("- ", White, StyleBold),
		Styled("NEW FALL CRATE", Gold, StyleBold),
	})
}

// Newlines do not reset state, and non-ASCII box characters next to
// strikethrough runs keep the span styled rather than collapsed.
func TestServerBlazeGaming(t *testing.T) {
	s := "§4§l§m⌜--------------------⌝\n   §4§lBLAZE§b-§6§lGAMING§b Network\n\n        " +
		"§bwww.mc-blaze.com\n            §8[§4116§7 /§4 1000§8]\n§4§l§m⌞--------------------⌟"
	assertSpans(t, Parse(s), []Span{
		Styled("⌜--------------------⌝\n   ", DarkRed, StyleBold|StyleStrikethrough),
		Styled("BLAZE", DarkRed, StyleBold),
		Styled("-", Aqua, 0),
		Styled("GAMING", Gold, StyleBold),
		Styled(" Network\n\n        ", Aqua, 0),
		Styled("www.mc-blaze.com\n            ", Aqua, 0),
		Styled("[", DarkGray, 0),
		Styled("116", DarkRed, 0),
		Styled(" /", Gray, 0),
		Styled(" 1000", DarkRed, 0),
		Styled("]\n", DarkGray, 0),
		Styled("⌞--------------------⌟", DarkRed, StyleBold|StyleStrikethrough),
	})
}

// §f runs produce Plain spans because the state is exactly the default.
func TestServerLemonCloud(t *testing.T) {
	s := "§f§f §6§m---§e§m---§f§m---§f   §e§lLemon§f§lCloud§f §6[1.7-1.16] §f  §f§m---§e§m---§6§m---§f  " +
		"§f\n          §6§lSurvival 1.16 §e§l+ §c§lNether Reset!"
	assertSpans(t, Parse(s), []Span{
		Plain(" "),
		Styled("---", Gold, StyleStrikethrough),
		Styled("---", Yellow, StyleStrikethrough),
		Styled("---", White, StyleStrikethrough),
		Plain("   "),
		Styled("Lemon", Yellow, StyleBold),
		Styled("Cloud", White, StyleBold),
		Plain(" "),
		Styled("[1.7-1.16] ", Gold, 0),
		Plain("  "),
		Styled("---", White, StyleStrikethrough),
		Styled("---", Yellow, StyleStrikethrough),
		Styled("---", Gold, StyleStrikethrough),
		Plain("  "),
		Plain("\n          "),
		Styled("Survival 1.16 ", Gold, StyleBold),
		Styled("+ ", Yellow, StyleBold),
		Styled("Nether Reset!", Red, StyleBold),
	})
}
