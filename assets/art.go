package assets

import (
	"fmt"
	"image"
	"strings"
)

// All game art is embedded as SVG markup and rasterized at startup. Character
// bodies share one template per pose; the skin color is substituted into the
// {fill} placeholder before rasterization.

const (
	characterWidth  = 48
	characterHeight = 64
	beeWidth        = 48
	beeHeight       = 40
	wormWidth       = 80
	wormHeight      = 40
	bulletWidth     = 24
	bulletHeight    = 12
	flashWidth      = 30
	flashHeight     = 24
	logoWidth       = 400
	logoHeight      = 160
)

const characterIdleSVG = `<svg width="48" height="64" viewBox="0 0 48 64" xmlns="http://www.w3.org/2000/svg">
<circle cx="24" cy="18" r="15" fill="{fill}"/>
<circle cx="30" cy="15" r="3" fill="#222222"/>
<circle cx="19" cy="15" r="3" fill="#222222"/>
<rect x="11" y="30" width="26" height="20" rx="7" fill="{fill}"/>
<rect x="15" y="48" width="7" height="15" rx="3" fill="{fill}"/>
<rect x="26" y="48" width="7" height="15" rx="3" fill="{fill}"/>
</svg>`

const characterWalkASVG = `<svg width="48" height="64" viewBox="0 0 48 64" xmlns="http://www.w3.org/2000/svg">
<circle cx="24" cy="18" r="15" fill="{fill}"/>
<circle cx="30" cy="15" r="3" fill="#222222"/>
<circle cx="19" cy="15" r="3" fill="#222222"/>
<rect x="11" y="30" width="26" height="20" rx="7" fill="{fill}"/>
<rect x="10" y="48" width="7" height="14" rx="3" fill="{fill}"/>
<rect x="30" y="48" width="7" height="15" rx="3" fill="{fill}"/>
</svg>`

const characterWalkBSVG = `<svg width="48" height="64" viewBox="0 0 48 64" xmlns="http://www.w3.org/2000/svg">
<circle cx="24" cy="18" r="15" fill="{fill}"/>
<circle cx="30" cy="15" r="3" fill="#222222"/>
<circle cx="19" cy="15" r="3" fill="#222222"/>
<rect x="11" y="30" width="26" height="20" rx="7" fill="{fill}"/>
<rect x="30" y="48" width="7" height="14" rx="3" fill="{fill}"/>
<rect x="10" y="48" width="7" height="15" rx="3" fill="{fill}"/>
</svg>`

const characterJumpSVG = `<svg width="48" height="64" viewBox="0 0 48 64" xmlns="http://www.w3.org/2000/svg">
<circle cx="24" cy="16" r="15" fill="{fill}"/>
<circle cx="30" cy="13" r="3" fill="#222222"/>
<circle cx="19" cy="13" r="3" fill="#222222"/>
<rect x="11" y="28" width="26" height="20" rx="7" fill="{fill}"/>
<rect x="13" y="44" width="8" height="10" rx="3" fill="{fill}"/>
<rect x="27" y="44" width="8" height="10" rx="3" fill="{fill}"/>
</svg>`

// Bee frames face left, the direction of travel.
const beeFrameASVG = `<svg width="48" height="40" viewBox="0 0 48 40" xmlns="http://www.w3.org/2000/svg">
<ellipse cx="26" cy="24" rx="18" ry="13" fill="#F2C200"/>
<rect x="18" y="12" width="6" height="25" fill="#222222"/>
<rect x="30" y="12" width="6" height="25" fill="#222222"/>
<circle cx="9" cy="22" r="7" fill="#222222"/>
<circle cx="7" cy="20" r="2" fill="#FFFFFF"/>
<ellipse cx="28" cy="8" rx="11" ry="6" fill="#CFE8FF"/>
</svg>`

const beeFrameBSVG = `<svg width="48" height="40" viewBox="0 0 48 40" xmlns="http://www.w3.org/2000/svg">
<ellipse cx="26" cy="24" rx="18" ry="13" fill="#F2C200"/>
<rect x="18" y="12" width="6" height="25" fill="#222222"/>
<rect x="30" y="12" width="6" height="25" fill="#222222"/>
<circle cx="9" cy="22" r="7" fill="#222222"/>
<circle cx="7" cy="20" r="2" fill="#FFFFFF"/>
<ellipse cx="30" cy="13" rx="13" ry="4" fill="#CFE8FF"/>
</svg>`

// Worm frames face left.
const wormFrameASVG = `<svg width="80" height="40" viewBox="0 0 80 40" xmlns="http://www.w3.org/2000/svg">
<ellipse cx="62" cy="30" rx="14" ry="9" fill="#7AB648"/>
<ellipse cx="42" cy="27" rx="15" ry="11" fill="#8FCC58"/>
<ellipse cx="18" cy="24" rx="15" ry="14" fill="#9FD868"/>
<circle cx="12" cy="19" r="3" fill="#222222"/>
</svg>`

const wormFrameBSVG = `<svg width="80" height="40" viewBox="0 0 80 40" xmlns="http://www.w3.org/2000/svg">
<ellipse cx="60" cy="30" rx="13" ry="9" fill="#7AB648"/>
<ellipse cx="40" cy="29" rx="14" ry="10" fill="#8FCC58"/>
<ellipse cx="18" cy="25" rx="15" ry="13" fill="#9FD868"/>
<circle cx="12" cy="20" r="3" fill="#222222"/>
</svg>`

// Bullet faces right.
const bulletSVG = `<svg width="24" height="12" viewBox="0 0 24 12" xmlns="http://www.w3.org/2000/svg">
<rect x="0" y="2" width="18" height="8" rx="3" fill="#555566"/>
<ellipse cx="19" cy="6" rx="5" ry="4" fill="#8A8AA0"/>
</svg>`

const flashSVG = `<svg width="30" height="24" viewBox="0 0 30 24" xmlns="http://www.w3.org/2000/svg">
<polygon points="0,12 12,6 10,0 18,7 30,4 20,12 30,20 18,17 10,24 12,18" fill="#FFB020"/>
<polygon points="6,12 14,8 13,4 18,9 25,7 19,12 25,17 18,15 13,20 14,16" fill="#FFE066"/>
</svg>`

const tileSVG = `<svg width="64" height="64" viewBox="0 0 64 64" xmlns="http://www.w3.org/2000/svg">
<rect x="0" y="0" width="64" height="64" fill="#8A5A33"/>
<rect x="0" y="0" width="64" height="14" fill="#6DA944"/>
<rect x="8" y="24" width="20" height="10" rx="2" fill="#7A4E2B"/>
<rect x="36" y="44" width="20" height="10" rx="2" fill="#7A4E2B"/>
</svg>`

const decorationSVG = `<svg width="64" height="64" viewBox="0 0 64 64" xmlns="http://www.w3.org/2000/svg">
<circle cx="20" cy="46" r="16" fill="#4E8F3A"/>
<circle cx="40" cy="42" r="19" fill="#5DA647"/>
<circle cx="52" cy="50" r="12" fill="#4E8F3A"/>
</svg>`

const logoSVG = `<svg width="400" height="160" viewBox="0 0 400 160" xmlns="http://www.w3.org/2000/svg">
<rect x="8" y="24" width="384" height="112" rx="28" fill="#3A2C22"/>
<rect x="18" y="34" width="364" height="92" rx="22" fill="#FCDFCD"/>
<rect x="40" y="96" width="64" height="20" rx="4" fill="#6DA944"/>
<rect x="296" y="96" width="64" height="20" rx="4" fill="#6DA944"/>
<circle cx="72" cy="80" r="18" fill="#D2B48C"/>
<ellipse cx="328" cy="76" rx="20" ry="14" fill="#F2C200"/>
</svg>`

// renderCharacterPose rasterizes one pose template with the skin color
// substituted in.
func renderCharacterPose(template, fill string) (image.Image, error) {
	svg := strings.ReplaceAll(template, "{fill}", fill)
	img, err := rasterizeSVG([]byte(svg), characterWidth, characterHeight)
	if err != nil {
		return nil, fmt.Errorf("render character pose: %w", err)
	}
	return img, nil
}
