package campaign

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/tabletop/internal/document"
	"github.com/cory-johannsen/tabletop/internal/game/bestiary"
	"github.com/cory-johannsen/tabletop/internal/game/item"
	"github.com/cory-johannsen/tabletop/internal/game/location"
	"github.com/cory-johannsen/tabletop/internal/game/npc"
	"github.com/cory-johannsen/tabletop/internal/game/trial"
)

// Content document names within a campaign root.
const (
	docMetadata  = "campaign.yaml"
	docMonsters  = "monsters.yaml"
	docNPCs      = "npcs.yaml"
	docItems     = "items.yaml"
	docLocations = "locations.yaml"
	docTrials    = "trials.yaml"
	docMiniGames = "minigames.yaml"
)

// Loader drives the multi-stage campaign load. It is a short-lived builder:
// construct one, call Load once, and keep the returned Campaign.
type Loader struct {
	log *zap.Logger

	campaign *Campaign
	diags    []Diagnostic
}

// NewLoader returns a Loader logging to log; a nil log disables logging.
func NewLoader(log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{log: log}
}

// Load reads every campaign document under contentRoot.
//
// The metadata document is mandatory: when it is absent or undecodable, ok
// is false, the campaign is nil, and the single cause is the only
// diagnostic. Every other document is optional and independent; one bad
// monster entry never blocks the rest of the campaign. Cross-reference
// findings are appended to the same list and never flip ok.
//
// Postcondition: on ok the returned Campaign is non-nil and its diagnostics
// equal the returned list.
func (l *Loader) Load(contentRoot string) (*Campaign, []Diagnostic, bool) {
	doc, err := document.Read(contentRoot, docMetadata)
	if err != nil {
		d := fatal(docMetadata, "%v", err)
		l.log.Error("campaign metadata unreadable", zap.String("root", contentRoot), zap.Error(err))
		return nil, []Diagnostic{d}, false
	}

	meta := doc.Root()
	l.campaign = &Campaign{
		ID:               meta.Str("id", ""),
		Name:             meta.Str("name", ""),
		Description:      meta.Str("description", ""),
		Author:           meta.Str("author", ""),
		Version:          meta.Str("version", ""),
		StartingLocation: meta.Str("starting_location", ""),
		locations:        make(map[string]*location.Location),
		npcs:             make(map[string]*npc.NPC),
		monsters:         bestiary.NewRegistry(),
		items:            item.NewRegistry(),
		trials:           make(map[string]*trial.Trial),
		minigames:        make(map[string]*trial.MiniGame),
	}
	l.log.Info("loading campaign",
		zap.String("id", l.campaign.ID),
		zap.String("name", l.campaign.Name),
		zap.String("root", contentRoot))

	l.loadMonsters(contentRoot)
	l.loadNPCs(contentRoot)
	l.loadItems(contentRoot)
	l.loadLocations(contentRoot)
	l.loadTrials(contentRoot)

	l.diags = append(l.diags, Validate(l.campaign)...)

	l.campaign.diagnostics = l.diags
	l.campaign.fullyLoaded = len(l.diags) == 0
	l.log.Info("campaign loaded",
		zap.Int("locations", len(l.campaign.locations)),
		zap.Int("npcs", len(l.campaign.npcs)),
		zap.Int("monsters", l.campaign.monsters.Len()),
		zap.Int("items", l.campaign.items.Len()),
		zap.Int("trials", len(l.campaign.trials)),
		zap.Int("minigames", len(l.campaign.minigames)),
		zap.Int("diagnostics", len(l.diags)))
	return l.campaign, l.diags, true
}

// openOptional reads an optional document. A missing file is not a finding;
// a malformed one yields a single decode diagnostic and a false ok.
func (l *Loader) openOptional(root, name string) (document.Document, bool) {
	if !document.Exists(root, name) {
		return document.Document{}, false
	}
	doc, err := document.Read(root, name)
	if err != nil {
		l.diags = append(l.diags, loadError(name, "%v", err))
		l.log.Warn("document skipped", zap.String("document", name), zap.Error(err))
		return document.Document{}, false
	}
	return doc, true
}

// records extracts the entity list under key, recording a diagnostic for
// each list entry that is not a mapping.
func (l *Loader) records(doc document.Document, key string) []document.Record {
	recs, skipped := doc.Records(key)
	for i := 0; i < skipped; i++ {
		l.diags = append(l.diags, loadError(doc.Name, "entry under %q is not a mapping, skipped", key))
	}
	return recs
}

func (l *Loader) loadMonsters(root string) {
	doc, ok := l.openOptional(root, docMonsters)
	if !ok {
		return
	}
	for _, rec := range l.records(doc, "monsters") {
		tmpl, warnings, err := bestiary.ParseTemplate(rec)
		l.addWarnings(docMonsters, warnings)
		if err != nil {
			l.diags = append(l.diags, loadError(docMonsters, "%v", err))
			continue
		}
		if err := l.campaign.monsters.Register(tmpl); err != nil {
			l.diags = append(l.diags, loadError(docMonsters, "%v", err))
		}
	}
}

func (l *Loader) loadNPCs(root string) {
	doc, ok := l.openOptional(root, docNPCs)
	if !ok {
		return
	}
	for _, rec := range l.records(doc, "npcs") {
		n, warnings, err := npc.ParseNPC(rec)
		l.addWarnings(docNPCs, warnings)
		if err != nil {
			l.diags = append(l.diags, loadError(docNPCs, "%v", err))
			continue
		}
		if _, exists := l.campaign.npcs[n.ID]; exists {
			l.diags = append(l.diags, loadError(docNPCs, "npc ID %q already registered", n.ID))
			continue
		}
		l.campaign.npcs[n.ID] = n
	}
}

func (l *Loader) loadItems(root string) {
	doc, ok := l.openOptional(root, docItems)
	if !ok {
		return
	}
	for _, rec := range l.records(doc, "weapons") {
		w, warnings, err := item.ParseWeapon(rec)
		l.addWarnings(docItems, warnings)
		if err != nil {
			l.diags = append(l.diags, loadError(docItems, "%v", err))
			continue
		}
		if err := l.campaign.items.RegisterWeapon(w); err != nil {
			l.diags = append(l.diags, loadError(docItems, "%v", err))
		}
	}
	for _, rec := range l.records(doc, "armor") {
		a, warnings, err := item.ParseArmor(rec)
		l.addWarnings(docItems, warnings)
		if err != nil {
			l.diags = append(l.diags, loadError(docItems, "%v", err))
			continue
		}
		if err := l.campaign.items.RegisterArmor(a); err != nil {
			l.diags = append(l.diags, loadError(docItems, "%v", err))
		}
	}
	for _, rec := range l.records(doc, "items") {
		plain, magic, warnings, err := item.ParseItem(rec)
		l.addWarnings(docItems, warnings)
		if err != nil {
			l.diags = append(l.diags, loadError(docItems, "%v", err))
			continue
		}
		var regErr error
		if magic != nil {
			regErr = l.campaign.items.RegisterMagic(magic)
		} else {
			regErr = l.campaign.items.RegisterItem(plain)
		}
		if regErr != nil {
			l.diags = append(l.diags, loadError(docItems, "%v", regErr))
		}
	}
}

func (l *Loader) loadLocations(root string) {
	doc, ok := l.openOptional(root, docLocations)
	if !ok {
		return
	}
	for _, rec := range l.records(doc, "locations") {
		loc, warnings, err := location.ParseLocation(rec)
		l.addWarnings(docLocations, warnings)
		if err != nil {
			l.diags = append(l.diags, loadError(docLocations, "%v", err))
			continue
		}
		if _, exists := l.campaign.locations[loc.ID]; exists {
			l.diags = append(l.diags, loadError(docLocations, "location ID %q already registered", loc.ID))
			continue
		}
		l.campaign.locations[loc.ID] = loc
	}
}

// loadTrials reads trials and mini-games. Both lists live in trials.yaml;
// mini-games may also come from a separate minigames.yaml.
func (l *Loader) loadTrials(root string) {
	for _, name := range []string{docTrials, docMiniGames} {
		doc, ok := l.openOptional(root, name)
		if !ok {
			continue
		}
		for _, rec := range l.records(doc, "minigames") {
			mg, warnings, err := trial.ParseMiniGame(rec)
			l.addWarnings(name, warnings)
			if err != nil {
				l.diags = append(l.diags, loadError(name, "%v", err))
				continue
			}
			if _, exists := l.campaign.minigames[mg.ID]; exists {
				l.diags = append(l.diags, loadError(name, "minigame ID %q already registered", mg.ID))
				continue
			}
			l.campaign.minigames[mg.ID] = mg
		}
		for _, rec := range l.records(doc, "trials") {
			t, warnings, err := trial.ParseTrial(rec)
			l.addWarnings(name, warnings)
			if err != nil {
				l.diags = append(l.diags, loadError(name, "%v", err))
				continue
			}
			if _, exists := l.campaign.trials[t.ID]; exists {
				l.diags = append(l.diags, loadError(name, "trial ID %q already registered", t.ID))
				continue
			}
			l.campaign.trials[t.ID] = t
		}
	}
}

func (l *Loader) addWarnings(source string, warnings []string) {
	for _, w := range warnings {
		l.diags = append(l.diags, warning(source, "%s", w))
	}
}
