package game

// Prompts holds every piece of text the game sends to the model or shows in
// place of a reply.
type Prompts struct {
	// SeedInstruction and SeedAck form the synthetic history every chat is
	// created with.
	SeedInstruction string
	SeedAck         string
	// Opening is sent as the first real turn. Its reply is the first message
	// the player sees.
	Opening string

	StartFailure      string
	CredentialFailure string
	TurnFailure       string
	Writing           string
}

// DefaultPrompts is the Italian fantasy dungeon master.
var DefaultPrompts = Prompts{
	SeedInstruction:   `Agisci come un Dungeon Master esperto di GDR fantasy. Rispondi in italiano. Sii epico, descrittivo ma conciso.`,
	SeedAck:           `Certamente. Sono pronto a guidare la tua avventura.`,
	Opening:           `Inizia l'avventura: mi trovo in una taverna fumosa. Chi sono e cosa vedo?`,
	StartFailure:      `Errore nella creazione del mondo. Riprova più tardi.`,
	CredentialFailure: `Errore nella creazione del mondo. Verifica la tua API Key.`,
	TurnFailure:       `(Il DM sembra confuso... riprova l'azione.)`,
	Writing:           `Il Dungeon Master sta scrivendo...`,
}

func (p Prompts) seed() []Message {
	if p.SeedInstruction == "" {
		return nil
	}
	return []Message{
		{Role: RoleUser, Text: p.SeedInstruction},
		{Role: RoleNarrator, Text: p.SeedAck},
	}
}
